package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	response "comanda/internal/adapter/http/dto/response"
	"comanda/internal/domain/entities"
	"comanda/internal/domain/projector"
	"comanda/internal/domain/reconciler"
	"comanda/internal/domain/tablestate"
	"comanda/internal/infrastructure/metrics"
	"comanda/internal/usecase"
	"comanda/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	streamWriteWait  = 7 * time.Second
	streamPongWait   = 70 * time.Second
	streamPingPeriod = 25 * time.Second
)

const (
	frameSnapshot = "snapshot"
	frameEvent    = "event"
	frameSignal   = "signal"
	framePayment  = "payment"
)

type streamFrame struct {
	Type string    `json:"type"`
	At   time.Time `json:"at"`
	Data any       `json:"data"`
}

var streamUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// StreamHandler pushes the table's change feed to a browser.
//
// The first frame is always the full snapshot. After that every change event
// is forwarded together with the kitchen signals and payment updates it
// derives. A client message {"type":"sync"} or a lagging feed triggers a
// fresh snapshot.
type StreamHandler struct {
	orders     usecase.IOrderUseCase
	subscriber interfaces.IEventSubscriber
	now        func() time.Time
}

func NewStreamHandler(orders usecase.IOrderUseCase, subscriber interfaces.IEventSubscriber) *StreamHandler {
	return &StreamHandler{orders: orders, subscriber: subscriber, now: time.Now}
}

type streamConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (s *streamConn) writeJSON(v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
	return s.conn.WriteMessage(websocket.TextMessage, raw)
}

func (s *streamConn) ping() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteControl(websocket.PingMessage, []byte("ping"), time.Now().Add(streamWriteWait))
}

func (h *StreamHandler) Stream(c *gin.Context) {
	tableID := strings.TrimSpace(c.Param("table_id"))
	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	// Subscribe before reading the snapshot so nothing falls in between.
	events, closeFn, err := h.subscriber.Subscribe(ctx, tableID)
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	defer func() { _ = closeFn() }()

	snap, err := h.orders.Snapshot(ctx, tableID)
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}

	conn, err := streamUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zap.L().Warn("[stream][handler] upgrade failed", zap.String("table_id", tableID), zap.Error(err))
		return
	}
	client := &streamConn{conn: conn}
	defer conn.Close()

	metrics.RealtimeSubscribers.Inc()
	defer metrics.RealtimeSubscribers.Dec()
	zap.L().Info("[stream][handler] subscriber connected", zap.String("table_id", tableID))

	proj := projector.New(h.now)
	rec := reconciler.New()
	if err := h.sendSnapshot(client, proj, rec, snap); err != nil {
		return
	}

	conn.SetReadLimit(1 << 16)
	_ = conn.SetReadDeadline(time.Now().Add(streamPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(streamPongWait))
	})

	resync := make(chan struct{}, 1)
	readDone := make(chan struct{})
	go func() {
		defer close(readDone)
		for {
			_, raw, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var msg struct {
				Type string `json:"type"`
			}
			if err := json.Unmarshal(raw, &msg); err != nil {
				continue
			}
			if strings.ToLower(strings.TrimSpace(msg.Type)) != "sync" {
				continue
			}
			select {
			case resync <- struct{}{}:
			default:
			}
		}
	}()

	ticker := time.NewTicker(streamPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-readDone:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := client.ping(); err != nil {
				return
			}
		case <-resync:
			if err := h.refresh(ctx, client, proj, rec, tableID); err != nil {
				return
			}
		case ev, ok := <-events:
			if !ok {
				return
			}
			if ev.Type == entities.ChangeResync {
				zap.L().Info("[stream][handler] feed lagged, resending snapshot", zap.String("table_id", tableID))
				if err := h.refresh(ctx, client, proj, rec, tableID); err != nil {
					return
				}
				continue
			}
			if err := h.forward(client, proj, rec, ev); err != nil {
				return
			}
		}
	}
}

// refresh reloads the table and sends it as a new snapshot frame. Only a
// write failure is returned; a failed reload keeps the stream open.
func (h *StreamHandler) refresh(ctx context.Context, client *streamConn, proj *projector.Projector, rec *reconciler.Reconciler, tableID string) error {
	snap, err := h.orders.Snapshot(ctx, tableID)
	if err != nil {
		zap.L().Warn("[stream][handler] resync failed", zap.String("table_id", tableID), zap.Error(err))
		return nil
	}
	return h.sendSnapshot(client, proj, rec, snap)
}

func (h *StreamHandler) sendSnapshot(client *streamConn, proj *projector.Projector, rec *reconciler.Reconciler, snap tablestate.Snapshot) error {
	proj.Seed(snap.Order, snap.Batches)
	rec.Seed(snap.Guests)
	return client.writeJSON(streamFrame{Type: frameSnapshot, At: h.now().UTC(), Data: response.FromSnapshot(snap)})
}

func (h *StreamHandler) forward(client *streamConn, proj *projector.Projector, rec *reconciler.Reconciler, ev entities.ChangeEvent) error {
	at := h.now().UTC()
	if err := client.writeJSON(streamFrame{Type: frameEvent, At: at, Data: ev}); err != nil {
		return err
	}
	for _, s := range proj.Apply(ev) {
		if err := client.writeJSON(streamFrame{Type: frameSignal, At: at, Data: s}); err != nil {
			return err
		}
	}
	if rec.Apply(ev) {
		update := reconciler.Update{
			GuestID: ev.ID,
			State:   reconciler.PaymentState{Paid: rec.IsGuestPaid(ev.ID), Method: rec.Method(ev.ID)},
		}
		if err := client.writeJSON(streamFrame{Type: framePayment, At: at, Data: update}); err != nil {
			return err
		}
	}
	return nil
}
