package telegram

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"fournil/internal/app"
	"fournil/internal/config"
	"fournil/internal/planning"
	"fournil/internal/shopping"
)

// Bot exposes the planner over Telegram: the shopping list, the
// production schedule, and the stock snapshot, for allow-listed users.
type Bot struct {
	api *tgbotapi.BotAPI
	app *app.App
	cfg *config.Config
}

// NewBot initializes the Telegram Bot and sets the Webhook.
func NewBot(cfg *config.Config, application *app.App) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram api: %w", err)
	}

	log.Printf("Authorized on account %s", api.Self.UserName)

	wh, _ := tgbotapi.NewWebhook(cfg.TelegramWebhookURL)
	resp, err := api.Request(wh)
	if err != nil {
		return nil, fmt.Errorf("failed to set webhook to %s: %w", cfg.TelegramWebhookURL, err)
	}
	log.Printf("Webhook set response: %s", resp.Description)

	return &Bot{
		api: api,
		app: application,
		cfg: cfg,
	}, nil
}

// RegisterHandlers registers the webhook handler with the default HTTP mux.
func (b *Bot) RegisterHandlers() {
	http.HandleFunc("/webhook", b.handleWebhook)
	http.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}

func (b *Bot) handleWebhook(w http.ResponseWriter, r *http.Request) {
	update, err := b.api.HandleUpdate(r)
	if err != nil {
		log.Printf("Error parsing update: %v", err)
		return
	}

	if update.Message == nil {
		return
	}

	email, allowed := b.cfg.TelegramAccounts[update.Message.From.ID]
	if !allowed {
		log.Printf("Unauthorized access attempt from UserID: %d (@%s)", update.Message.From.ID, update.Message.From.UserName)
		return
	}

	ctx := r.Context()
	ownerID, err := b.app.OwnerByEmail(ctx, email)
	if err != nil {
		log.Printf("Failed to resolve account for %s: %v", email, err)
		b.reply(update.Message.Chat.ID, "Compte introuvable, vérifiez la configuration.")
		return
	}

	b.handleCommand(ctx, update.Message, ownerID)
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message, ownerID string) {
	fields := strings.Fields(msg.Text)
	if len(fields) == 0 {
		return
	}

	switch fields[0] {
	case "/shopping":
		from, to, ok := shoppingArgs(fields)
		if !ok {
			b.reply(msg.Chat.ID, "Usage : /shopping ou /shopping 2026-09-01 2026-09-08")
			return
		}
		b.sendShoppingList(ctx, msg.Chat.ID, ownerID, from, to)
	case "/planning":
		b.sendPlanning(ctx, msg.Chat.ID, ownerID)
	case "/stock":
		b.sendStock(ctx, msg.Chat.ID, ownerID)
	case "/start", "/help":
		b.reply(msg.Chat.ID, helpText)
	default:
		b.reply(msg.Chat.ID, "Commande inconnue. Essayez /help.")
	}
}

// shoppingArgs reads the optional date bounds of /shopping. Both bounds
// or neither: a lone date is not guessed at.
func shoppingArgs(fields []string) (from, to string, ok bool) {
	switch len(fields) {
	case 1:
		return "", "", true
	case 3:
		return fields[1], fields[2], true
	default:
		return "", "", false
	}
}

const helpText = `Commandes disponibles :
/shopping [du au] : liste de courses (par défaut les 7 prochains jours)
/planning : productions planifiées
/stock : stock d'ingrédients`

func (b *Bot) sendShoppingList(ctx context.Context, chatID int64, ownerID, from, to string) {
	list, err := b.app.GenerateShoppingList(ctx, ownerID, from, to)
	if err != nil {
		log.Printf("Failed to generate shopping list: %v", err)
		b.reply(chatID, "Impossible de générer la liste de courses.")
		return
	}

	if len(list) == 0 {
		b.reply(chatID, "Aucun achat nécessaire 🛒")
		return
	}
	b.reply(chatID, shopping.ExportText(list))
}

func (b *Bot) sendPlanning(ctx context.Context, chatID int64, ownerID string) {
	plans, err := b.app.Plans.List(ctx, ownerID)
	if err != nil {
		log.Printf("Failed to list plans: %v", err)
		b.reply(chatID, "Impossible de charger le planning.")
		return
	}

	if len(plans) == 0 {
		b.reply(chatID, "Aucune production planifiée.")
		return
	}

	var sb strings.Builder
	dates, grouped := planning.GroupByDate(plans)
	for _, date := range dates {
		fmt.Fprintf(&sb, "📅 %s\n", date)
		for _, plan := range grouped[date] {
			end, err := plan.EndTime()
			if err != nil {
				end = "?"
			}
			fmt.Fprintf(&sb, "  %s → %s  %s (×%g, %s)\n",
				plan.StartTime, end, plan.RecipeName,
				plan.QuantityMultiplier, planning.FormatDuration(plan.TotalTimeMinutes()))
		}
	}
	b.reply(chatID, sb.String())
}

func (b *Bot) sendStock(ctx context.Context, chatID int64, ownerID string) {
	ingredients, err := b.app.Inventory.List(ctx, ownerID)
	if err != nil {
		log.Printf("Failed to list ingredients: %v", err)
		b.reply(chatID, "Impossible de charger le stock.")
		return
	}

	if len(ingredients) == 0 {
		b.reply(chatID, "Aucun ingrédient en stock.")
		return
	}

	var sb strings.Builder
	for _, ing := range ingredients {
		marker := ""
		if ing.LowStock() {
			marker = " ⚠️"
		}
		fmt.Fprintf(&sb, "%s : %s %s%s\n", ing.Name, shopping.FormatAmount(ing.StockQuantity), ing.Unit, marker)
	}
	b.reply(chatID, sb.String())
}

func (b *Bot) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}
