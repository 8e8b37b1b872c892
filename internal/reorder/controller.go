// Package reorder implements the optimistic drag-to-reorder protocol for a
// company's section list: apply the new order to display state immediately,
// persist the full ordering, and roll back to the captured snapshot when
// persistence fails.
package reorder

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/whitecaroot/careers-builder/internal/models"
)

// PersistFunc sends the full ordered list of section ids to the server.
type PersistFunc func(ctx context.Context, sectionIDs []string) error

// Controller owns the displayed section order. Move gestures are
// serialized end to end: a second gesture waits for the first one's
// persistence to settle, so overlapping drags resolve in issuance order
// and a rollback can never clobber a newer gesture's state.
type Controller struct {
	gestureMu sync.Mutex   // serializes whole gestures, incl. persistence
	mu        sync.RWMutex // guards sections for display reads
	sections  []models.Section
	persist   PersistFunc
	log       *logrus.Logger
}

func NewController(persist PersistFunc, log *logrus.Logger) *Controller {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Controller{persist: persist, log: log}
}

// Replace installs a fresh server-confirmed list, e.g. after a load or a
// CRUD refresh.
func (c *Controller) Replace(sections []models.Section) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sections = append([]models.Section(nil), sections...)
}

// Sections returns a copy of the current display order.
func (c *Controller) Sections() []models.Section {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.Section(nil), c.sections...)
}

// IDs returns the current display order as identifiers.
func (c *Controller) IDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ids := make([]string, len(c.sections))
	for i, s := range c.sections {
		ids[i] = s.ID
	}
	return ids
}

// Move applies a drag-end gesture: the section activeID is removed from
// the sequence and reinserted at the position of overID, preserving the
// relative order of every other section. The new order is visible in
// display state before persistence begins; if persistence fails the
// pre-gesture sequence is restored and the error returned.
//
// Dropping outside any target (overID == "") or onto itself is a no-op,
// as is a gesture naming an id no longer in the list.
func (c *Controller) Move(ctx context.Context, activeID, overID string) error {
	c.gestureMu.Lock()
	defer c.gestureMu.Unlock()

	if overID == "" || activeID == overID {
		return nil
	}

	c.mu.Lock()
	from := indexOf(c.sections, activeID)
	to := indexOf(c.sections, overID)
	if from < 0 || to < 0 {
		c.mu.Unlock()
		return nil
	}
	snapshot := append([]models.Section(nil), c.sections...)
	c.sections = splice(c.sections, from, to)
	ids := make([]string, len(c.sections))
	for i, s := range c.sections {
		ids[i] = s.ID
	}
	c.mu.Unlock()

	if err := c.persist(ctx, ids); err != nil {
		c.log.WithError(err).Warn("reorder: persist failed, rolling back")
		c.mu.Lock()
		c.sections = snapshot
		c.mu.Unlock()
		return err
	}
	return nil
}

func indexOf(sections []models.Section, id string) int {
	for i, s := range sections {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// splice removes the element at from and reinserts it at to. List splice
// semantics, not a swap: every untouched element keeps its relative order.
func splice(sections []models.Section, from, to int) []models.Section {
	out := make([]models.Section, 0, len(sections))
	out = append(out, sections[:from]...)
	out = append(out, sections[from+1:]...)
	moved := sections[from]
	out = append(out[:to], append([]models.Section{moved}, out[to:]...)...)
	return out
}
