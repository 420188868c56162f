package service

import (
	"context"
	"errors"
	"time"

	"oko/coaching-app/internal/domain"
	"oko/coaching-app/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// --- Error Definitions ---
var (
	ErrMissingMessageFields = errors.New("message is missing required fields")
)

// MessageService is the append-only chat ledger. Messages are never mutated
// or deleted; read state lives on the TraineeSummary.
type MessageService interface {
	// Send appends one message. Trainee-sent direct messages bump the
	// trainee's unread counter on the trainer's roster.
	Send(ctx context.Context, msg domain.Message) (*domain.Message, error)
	// Broadcast fans the template out as one individually addressed copy per
	// recipient: fresh IDs, one shared timestamp, IsBroadcast set. All copies
	// are appended together or not at all. A nil traineeIDs means every
	// managed trainee.
	Broadcast(ctx context.Context, template domain.Message, traineeIDs []string) ([]domain.Message, error)
	// MarkRead resets the trainee's unread counter. Message records are
	// untouched.
	MarkRead(ctx context.Context, traineeID string) error
	// Thread returns the full conversation for a trainee and channel in
	// insertion order.
	Thread(ctx context.Context, traineeID string, chatType domain.ChatChannel) []domain.Message
}

type messageService struct {
	store  *store.Store
	logger *zap.SugaredLogger
}

// NewMessageService creates a new instance of messageService.
func NewMessageService(st *store.Store, logger *zap.SugaredLogger) MessageService {
	return &messageService{store: st, logger: logger}
}

func (s *messageService) Send(ctx context.Context, msg domain.Message) (*domain.Message, error) {
	if msg.TraineeID == "" || msg.ChatType == "" || msg.Sender == "" {
		return nil, ErrMissingMessageFields
	}
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}
	if msg.Type == "" {
		msg.Type = domain.MessageText
	}
	err := s.store.Update(func(state *store.State) error {
		state.Messages = append(state.Messages, msg)
		if msg.Sender == domain.SenderUser && msg.ChatType == domain.ChatDirect {
			if t, ok := state.TraineeByID(msg.TraineeID); ok {
				t.UnreadCount++
				at := msg.Timestamp
				t.LastMessageAt = &at
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func (s *messageService) Broadcast(ctx context.Context, template domain.Message, traineeIDs []string) ([]domain.Message, error) {
	if template.Sender == "" || template.ChatType == "" {
		return nil, ErrMissingMessageFields
	}
	var sent []domain.Message
	err := s.store.Update(func(state *store.State) error {
		ids := traineeIDs
		if ids == nil {
			for _, t := range state.Trainees {
				ids = append(ids, t.ID)
			}
		} else {
			for _, id := range ids {
				if _, ok := state.TraineeByID(id); !ok {
					return ErrTraineeNotFound
				}
			}
		}
		timestamp := time.Now()
		batch := make([]domain.Message, 0, len(ids))
		for _, id := range ids {
			msg := template
			msg.ID = uuid.NewString()
			msg.TraineeID = id
			msg.IsBroadcast = true
			msg.Timestamp = timestamp
			batch = append(batch, msg)
		}
		state.Messages = append(state.Messages, batch...)
		sent = batch
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Infow("broadcast sent", "recipients", len(sent))
	return sent, nil
}

func (s *messageService) MarkRead(ctx context.Context, traineeID string) error {
	return s.store.Update(func(state *store.State) error {
		if t, ok := state.TraineeByID(traineeID); ok {
			t.UnreadCount = 0
		}
		return nil
	})
}

func (s *messageService) Thread(ctx context.Context, traineeID string, chatType domain.ChatChannel) []domain.Message {
	var out []domain.Message
	s.store.View(func(state *store.State) {
		for _, msg := range state.Messages {
			if msg.TraineeID == traineeID && msg.ChatType == chatType {
				out = append(out, msg)
			}
		}
	})
	return out
}
