// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/lookout/models"
	"github.com/danielhkuo/lookout/store"
)

var ErrValidation = errors.New("invalid intake")

// IdentityField names the record field an identity submission targets.
type IdentityField int

const (
	IdentityUsername IdentityField = iota
	IdentityDiscord
)

// Cards is the presentation layer the reconciler drives. The cards package
// implements it over Discord; tests substitute a fake.
type Cards interface {
	CreateCard(ctx context.Context, rec models.Record) (string, error)
	EditCard(ctx context.Context, ref string, patch models.Patch) error
}

// Reconciler merges intake events and identity submissions into the record
// store, propagating identity across records that share a device id.
type Reconciler struct {
	store *store.Store
	cards Cards
	now   func() time.Time
}

func New(st *store.Store, cards Cards) *Reconciler {
	return &Reconciler{store: st, cards: cards, now: time.Now}
}

// RecordIntake validates an intake report, posts its card, and appends the
// linked record. Returns the new card reference.
func (r *Reconciler) RecordIntake(ctx context.Context, req models.IntakeRequest) (string, error) {
	deviceUser := strings.TrimSpace(req.DeviceUser)
	deviceID := strings.TrimSpace(req.DeviceID)
	if deviceUser == "" {
		return "", fmt.Errorf("%w: device_user is required", ErrValidation)
	}
	if deviceID == "" {
		return "", fmt.Errorf("%w: device_id is required", ErrValidation)
	}

	rec := models.Record{
		ID:         uuid.NewString(),
		Timestamp:  r.now().UTC().Format(models.TimestampFormat),
		DeviceUser: deviceUser,
		DeviceID:   deviceID,
		Country:    strings.TrimSpace(req.Country),
		Region:     strings.TrimSpace(req.Region),
		City:       strings.TrimSpace(req.City),
	}

	ref, err := r.cards.CreateCard(ctx, rec)
	if err != nil {
		return "", fmt.Errorf("failed to create card: %w", err)
	}
	rec.CardReference = ref

	if _, err := r.store.Append(rec); err != nil {
		return "", fmt.Errorf("failed to persist intake: %w", err)
	}
	return ref, nil
}

// ApplyIdentitySubmission merges a submitted identity field into the record
// linked to cardRef, then propagates the value to every record sharing the
// same device id. An empty value is a no-op. An unknown card reference
// degrades to a display-only card edit: the operator sees the value, but
// nothing is persisted.
func (r *Reconciler) ApplyIdentitySubmission(ctx context.Context, cardRef string, field IdentityField, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	patch := fieldPatch(field, value)
	if patch.IsZero() {
		return nil
	}

	target, _, err := r.store.FindByCardRef(cardRef)
	if errors.Is(err, store.ErrNotFound) {
		slog.Warn("identity submission for unknown card", "card_ref", cardRef)
		return r.cards.EditCard(ctx, cardRef, patch)
	}
	if err != nil {
		return err
	}

	// One store-wide save covers the target and every sibling; the target
	// matches its own device id.
	err = r.store.Update(func(snap *store.Snapshot) error {
		for i := range snap.Records {
			if snap.Records[i].DeviceID == target.DeviceID {
				patch.Apply(&snap.Records[i])
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to persist identity: %w", err)
	}

	return r.cards.EditCard(ctx, cardRef, patch)
}

func fieldPatch(field IdentityField, value string) models.Patch {
	switch field {
	case IdentityUsername:
		return models.Patch{Username: value}
	case IdentityDiscord:
		return models.Patch{DiscordID: value}
	}
	return models.Patch{}
}
