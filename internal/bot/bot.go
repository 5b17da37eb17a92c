package bot

import (
	"context"
	"log"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"plan-widget/internal/model"
	"plan-widget/internal/widget"
)

// Bot is the development host surface: it embeds the widget in a Telegram
// chat, rendering the resolved state and mapping inline buttons onto the
// gesture actions.
type Bot struct {
	api        *tgbotapi.BotAPI
	controller *widget.Controller

	mu    sync.Mutex
	chats map[int64]bool // chats that opened the widget, for daily pushes
}

func New(token string, controller *widget.Controller) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Printf("[info] bot authorized on account %s", api.Self.UserName)

	return &Bot{
		api:        api,
		controller: controller,
		chats:      make(map[int64]bool),
	}, nil
}

// Start begins polling updates until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := b.api.GetUpdatesChan(updateConfig)

	log.Println("[info] start polling updates")

	go func() {
		<-ctx.Done()
		b.api.StopReceivingUpdates()
	}()

	for update := range updates {
		switch {
		case update.CallbackQuery != nil:
			if err := b.handleCallback(ctx, update.CallbackQuery); err != nil {
				log.Printf("handle callback: %v", err)
			}
		case update.Message != nil:
			if update.Message.Chat == nil || !update.Message.Chat.IsPrivate() {
				continue
			}
			if err := b.handleMessage(ctx, update.Message); err != nil {
				log.Printf("handle message: %v", err)
			}
		}
	}

	return nil
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) error {
	if msg.From == nil || !msg.IsCommand() {
		return nil
	}

	log.Printf("[info] command from %d: /%s", msg.From.ID, msg.Command())

	switch msg.Command() {
	case "start":
		b.rememberChat(msg.Chat.ID)
		return b.sendText(msg.Chat.ID, "👋 Hi! I show your day-plan widget here.\n\nCommands:\n• /widget — show the widget\n• /refresh — force a refresh\n• /help — hints")
	case "help":
		return b.sendText(msg.Chat.ID, "ℹ️ <b>Hints</b>\n• ✅ Done completes the shown task\n• ⏭ Skip flips to the easiest remaining task (nothing is saved)\n• 😴 Snooze moves the task to tomorrow\n• Tapping 🙈 on an event hides it until a new one comes up")
	case "widget":
		b.rememberChat(msg.Chat.ID)
		return b.sendWidget(ctx, msg.Chat.ID)
	case "refresh":
		b.rememberChat(msg.Chat.ID)
		b.refresh(ctx)
		return b.sendWidget(ctx, msg.Chat.ID)
	default:
		return b.sendText(msg.Chat.ID, "Unknown command. See /help.")
	}
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) error {
	if cb == nil || cb.From == nil || cb.Message == nil {
		return nil
	}

	if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		log.Printf("callback ack: %v", err)
	}

	actionCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	log.Printf("[info] callback %s from %d", cb.Data, cb.From.ID)

	switch cb.Data {
	case cbComplete:
		b.controller.CompleteCurrent(actionCtx)
	case cbSkip:
		b.controller.SkipCurrent(actionCtx)
	case cbSnooze:
		b.controller.SnoozeCurrent(actionCtx)
	case cbDismiss:
		b.controller.DismissEvent(actionCtx)
	case cbRefresh:
		b.controller.Refresh(actionCtx)
	default:
		return nil
	}

	return b.editWidget(cb.Message.Chat.ID, cb.Message.MessageID)
}

// PushWidgets re-renders the widget into every known chat. Driven by the
// daily push schedule.
func (b *Bot) PushWidgets(ctx context.Context) error {
	b.refresh(ctx)
	for _, chatID := range b.knownChats() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := b.sendWidget(ctx, chatID); err != nil {
			log.Printf("push widget to %d: %v", chatID, err)
		}
	}
	return nil
}

func (b *Bot) refresh(ctx context.Context) {
	refreshCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	b.controller.Refresh(refreshCtx)
}

func (b *Bot) sendWidget(ctx context.Context, chatID int64) error {
	state := b.controller.State()
	if _, isLoading := state.(model.Loading); isLoading {
		b.refresh(ctx)
		state = b.controller.State()
	}

	text, markup := Render(state)
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = markup
	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) editWidget(chatID int64, messageID int) error {
	text, markup := Render(b.controller.State())
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, markup)
	edit.ParseMode = tgbotapi.ModeHTML
	_, err := b.api.Send(edit)
	return err
}

func (b *Bot) sendText(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) rememberChat(chatID int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.chats[chatID] = true
}

func (b *Bot) knownChats() []int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]int64, 0, len(b.chats))
	for id := range b.chats {
		out = append(out, id)
	}
	return out
}
