package usecase

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"journal-backend/internal/domain"
	"journal-backend/internal/infrastructure/fcm"
	"journal-backend/internal/repository"
)

// notifyCooldown suppresses duplicate pushes while a trade is being
// edited back-to-back.
const notifyCooldown = 5 * time.Minute

// Notifier pushes an FCM alert to registered devices when a trade gets a
// recorded result.
type Notifier struct {
	fcm    *fcm.Client
	tokens *repository.TokenRepository
	log    zerolog.Logger

	mu       sync.Mutex
	notified map[string]time.Time // trade id -> last push
}

func NewNotifier(fcmClient *fcm.Client, tokens *repository.TokenRepository, log zerolog.Logger) *Notifier {
	return &Notifier{
		fcm:      fcmClient,
		tokens:   tokens,
		log:      log,
		notified: make(map[string]time.Time),
	}
}

// TradeClosed sends a result summary for the given trade. No-op without FCM
// credentials or registered devices.
func (n *Notifier) TradeClosed(t *domain.Trade) {
	if n.fcm == nil || !n.fcm.IsEnabled() {
		return
	}

	tokens := n.tokens.All()
	if len(tokens) == 0 {
		return
	}

	now := time.Now()
	n.mu.Lock()
	if last, ok := n.notified[t.ID]; ok && now.Sub(last) < notifyCooldown {
		n.mu.Unlock()
		return
	}
	n.notified[t.ID] = now
	// Drop stale entries so the map does not grow with the journal.
	for id, ts := range n.notified {
		if now.Sub(ts) > 2*notifyCooldown {
			delete(n.notified, id)
		}
	}
	n.mu.Unlock()

	title := fmt.Sprintf("%s %s", t.Symbol, t.Result)
	if t.RealizedR != nil {
		title = fmt.Sprintf("%s %s %+.2fR", t.Symbol, t.Result, *t.RealizedR)
	}
	body := fmt.Sprintf("%s %s %s", t.TradeDate, t.Timeframe, t.StrategyTag)

	data := map[string]string{
		"tradeId": t.ID,
		"symbol":  t.Symbol,
		"result":  string(t.Result),
	}

	if err := n.fcm.SendMulticast(tokens, title, body, data); err != nil {
		n.log.Error().Err(err).Str("trade_id", t.ID).Msg("sending trade notification")
		return
	}
	n.log.Info().Str("trade_id", t.ID).Int("devices", len(tokens)).Msg("trade notification sent")
}
