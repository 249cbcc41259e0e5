package audit

import (
	"context"
	"sync"

	"github.com/BruksfildServices01/clinica-api/internal/logger"
)

const (
	ActionPatientCreated = "patient.created"
	ActionPatientUpdated = "patient.updated"
	ActionPatientDeleted = "patient.deleted"

	ActionAnnotationCreated = "annotation.created"
	ActionAnnotationUpdated = "annotation.updated"
	ActionAnnotationDeleted = "annotation.deleted"

	ActionBudgetCreated = "budget.created"
	ActionBudgetUpdated = "budget.updated"
	ActionBudgetDeleted = "budget.deleted"
	ActionItemChanged   = "budget.item_changed"
	ActionPaymentChange = "budget.payment_changed"

	ActionPhotoFolderRenameFailed = "photo.folder_rename_failed"
)

// EntityID é texto porque anotações e pacientes não têm id numérico.
type Event struct {
	Action   string
	Entity   string
	EntityID string
	Metadata any
}

type Dispatcher struct {
	logger *Logger
	log    *logger.Logger
	queue  chan Event

	closeOnce sync.Once
	done      chan struct{}
}

func NewDispatcher(l *Logger, log *logger.Logger) *Dispatcher {
	d := &Dispatcher{
		logger: l,
		log:    log.With("component", "AuditDispatcher"),
		queue:  make(chan Event, 100), // buffer seguro
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.logger.Log(context.Background(), ev); err != nil {
			d.log.Warn("audit error", "action", ev.Action, "error", err)
		}
	}
}

// Dispatch nunca bloqueia. Dispatcher nil é aceito (testes, CLI).
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos audit (nunca quebrar API)
		d.log.Warn("audit queue full, dropping event", "action", ev.Action)
	}
}

// Close drena a fila. Dispatch depois de Close entra em pânico.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}
	d.closeOnce.Do(func() {
		close(d.queue)
		<-d.done
	})
}
