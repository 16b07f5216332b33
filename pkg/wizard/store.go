package wizard

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const sessionKey = "wizard_state"

// Store сериализира състоянието на wizard-а в сесията на заявката.
// Така черновата е видима само за своята сесия — две едновременни
// изпращания от различни потребители не споделят нищо.
type Store struct {
	sessions *session.Store
}

// NewStore създава Store върху session store-а на приложението.
func NewStore(sessions *session.Store) *Store {
	return &Store{sessions: sessions}
}

// Load чете състоянието от сесията, създавайки ново при първо ползване.
func (s *Store) Load(c *fiber.Ctx) (*State, error) {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return nil, fmt.Errorf("сесията не може да бъде отворена: %w", err)
	}

	raw, ok := sess.Get(sessionKey).([]byte)
	if !ok || len(raw) == 0 {
		return NewState(), nil
	}

	var st State
	if err := json.Unmarshal(raw, &st); err != nil {
		// Повредено състояние — започваме начисто.
		return NewState(), nil
	}
	if st.Stepper.Steps == 0 {
		return NewState(), nil
	}
	return &st, nil
}

// Save записва състоянието обратно в сесията.
func (s *Store) Save(c *fiber.Ctx, st *State) error {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return fmt.Errorf("сесията не може да бъде отворена: %w", err)
	}

	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("състоянието не може да бъде сериализирано: %w", err)
	}
	sess.Set(sessionKey, raw)
	return sess.Save()
}

// Clear нулира състоянието в сесията.
func (s *Store) Clear(c *fiber.Ctx) error {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return fmt.Errorf("сесията не може да бъде отворена: %w", err)
	}
	sess.Delete(sessionKey)
	return sess.Save()
}
