package forms

import (
	"time"

	"github.com/google/uuid"

	"github.com/Its-donkey/techsolutions-site/internal/ui/eventloop"
	"github.com/Its-donkey/techsolutions-site/internal/ui/model"
)

// MessagePresenter renders the form banner.
type MessagePresenter interface {
	ShowMessage(msg model.Message)
	RemoveMessage(id string)
}

// messageBoard keeps at most one banner on screen and expires it.
type messageBoard struct {
	presenter MessagePresenter
	sched     eventloop.Scheduler
	ttl       time.Duration
	current   *model.Message
	expiry    eventloop.Timer
}

func newMessageBoard(presenter MessagePresenter, sched eventloop.Scheduler, ttl time.Duration) *messageBoard {
	return &messageBoard{presenter: presenter, sched: sched, ttl: ttl}
}

func (b *messageBoard) show(kind model.MessageKind, text string) model.Message {
	b.clear()

	msg := model.Message{ID: uuid.NewString(), Kind: kind, Text: text}
	b.current = &msg
	b.presenter.ShowMessage(msg)
	b.expiry = b.sched.AfterFunc(b.ttl, func() {
		if b.current == nil || b.current.ID != msg.ID {
			return
		}
		b.current = nil
		b.expiry = nil
		b.presenter.RemoveMessage(msg.ID)
	})
	return msg
}

func (b *messageBoard) clear() {
	if b.expiry != nil {
		b.expiry.Stop()
		b.expiry = nil
	}
	if b.current != nil {
		b.presenter.RemoveMessage(b.current.ID)
		b.current = nil
	}
}

func (b *messageBoard) visible() (model.Message, bool) {
	if b.current == nil {
		return model.Message{}, false
	}
	return *b.current, true
}
