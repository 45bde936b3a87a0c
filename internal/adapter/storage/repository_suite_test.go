package storage

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/rl1809/partstore/internal/core/domain"
	"github.com/rl1809/partstore/internal/port"
)

func newID(t *testing.T) string {
	t.Helper()
	id, err := uuid.NewV7()
	if err != nil {
		t.Fatalf("generate id: %v", err)
	}
	return id.String()
}

func partWithID(t *testing.T) domain.Part {
	return domain.Part{ID: newID(t)}
}

func strPtr(s string) *string   { return &s }
func numPtr(f float64) *float64 { return &f }

// runRepositorySuite exercises the behaviour every backend must share.
func runRepositorySuite(t *testing.T, repo port.PartRepository) {
	ctx := context.Background()

	first := domain.Part{ID: newID(t), Type: strPtr("resistor"), Brand: strPtr("X"), Quantity: numPtr(10), Price: numPtr(0.5)}
	second := domain.Part{ID: newID(t), Type: strPtr("capacitor"), Model: strPtr("")}
	third := domain.Part{ID: newID(t)}

	for _, p := range []domain.Part{first, second, third} {
		if err := repo.CreatePart(ctx, p); err != nil {
			t.Fatalf("CreatePart failed: %v", err)
		}
	}

	t.Run("list newest first", func(t *testing.T) {
		parts, err := repo.ListParts(ctx)
		if err != nil {
			t.Fatalf("ListParts failed: %v", err)
		}
		if len(parts) != 3 {
			t.Fatalf("expected 3 parts, got %d", len(parts))
		}
		if parts[0].ID != third.ID || parts[1].ID != second.ID || parts[2].ID != first.ID {
			t.Errorf("unexpected order: %s, %s, %s", parts[0].ID, parts[1].ID, parts[2].ID)
		}

		got := parts[2]
		if got.Type == nil || *got.Type != "resistor" {
			t.Errorf("expected type resistor, got %v", got.Type)
		}
		if got.Quantity == nil || *got.Quantity != 10 {
			t.Errorf("expected quantity 10, got %v", got.Quantity)
		}
		if got.Price == nil || *got.Price != 0.5 {
			t.Errorf("expected price 0.5, got %v", got.Price)
		}
		if got.Model != nil {
			t.Errorf("expected no model, got %q", *got.Model)
		}
		if parts[1].Model == nil || *parts[1].Model != "" {
			t.Errorf("expected empty model to survive, got %v", parts[1].Model)
		}
		if parts[0].Type != nil || parts[0].Quantity != nil {
			t.Errorf("expected empty part, got %+v", parts[0])
		}
	})

	t.Run("update merges fields", func(t *testing.T) {
		fields := domain.Fields{
			Quantity: domain.Value[float64]{Set: true, Val: numPtr(5)},
			Brand:    domain.Value[string]{Set: true},
			Model:    domain.Value[string]{Set: true, Val: strPtr("R-100")},
		}

		n, err := repo.UpdatePart(ctx, first.ID, fields)
		if err != nil {
			t.Fatalf("UpdatePart failed: %v", err)
		}
		if n != 1 {
			t.Errorf("expected 1 affected, got %d", n)
		}

		got := findPart(t, repo, first.ID)
		if got.Quantity == nil || *got.Quantity != 5 {
			t.Errorf("expected quantity 5, got %v", got.Quantity)
		}
		if got.Brand != nil {
			t.Errorf("expected brand cleared, got %q", *got.Brand)
		}
		if got.Model == nil || *got.Model != "R-100" {
			t.Errorf("expected model R-100, got %v", got.Model)
		}
		if got.Type == nil || *got.Type != "resistor" {
			t.Errorf("expected type untouched, got %v", got.Type)
		}
		if got.Price == nil || *got.Price != 0.5 {
			t.Errorf("expected price untouched, got %v", got.Price)
		}
	})

	t.Run("update with unchanged values still matches", func(t *testing.T) {
		fields := domain.Fields{Quantity: domain.Value[float64]{Set: true, Val: numPtr(5)}}
		n, err := repo.UpdatePart(ctx, first.ID, fields)
		if err != nil {
			t.Fatalf("UpdatePart failed: %v", err)
		}
		if n != 1 {
			t.Errorf("expected 1 affected, got %d", n)
		}

		n, err = repo.UpdatePart(ctx, first.ID, domain.Fields{})
		if err != nil {
			t.Fatalf("UpdatePart failed: %v", err)
		}
		if n != 1 {
			t.Errorf("expected 1 affected for empty update, got %d", n)
		}
	})

	t.Run("update unknown id is a no-op", func(t *testing.T) {
		fields := domain.Fields{Quantity: domain.Value[float64]{Set: true, Val: numPtr(5)}}
		n, err := repo.UpdatePart(ctx, newID(t), fields)
		if err != nil {
			t.Fatalf("UpdatePart failed: %v", err)
		}
		if n != 0 {
			t.Errorf("expected 0 affected, got %d", n)
		}

		parts, _ := repo.ListParts(ctx)
		if len(parts) != 3 {
			t.Errorf("expected store unchanged, got %d parts", len(parts))
		}
	})

	t.Run("delete", func(t *testing.T) {
		n, err := repo.DeletePart(ctx, second.ID)
		if err != nil {
			t.Fatalf("DeletePart failed: %v", err)
		}
		if n != 1 {
			t.Errorf("expected 1 deleted, got %d", n)
		}

		n, err = repo.DeletePart(ctx, second.ID)
		if err != nil {
			t.Fatalf("DeletePart failed: %v", err)
		}
		if n != 0 {
			t.Errorf("expected 0 deleted on second call, got %d", n)
		}

		parts, _ := repo.ListParts(ctx)
		if len(parts) != 2 {
			t.Fatalf("expected 2 parts, got %d", len(parts))
		}
		for _, p := range parts {
			if p.ID == second.ID {
				t.Error("deleted part still listed")
			}
		}
	})
}

func findPart(t *testing.T, repo port.PartRepository, id string) domain.Part {
	t.Helper()
	parts, err := repo.ListParts(context.Background())
	if err != nil {
		t.Fatalf("ListParts failed: %v", err)
	}
	for _, p := range parts {
		if p.ID == id {
			return p
		}
	}
	t.Fatalf("part %s not found", id)
	return domain.Part{}
}
