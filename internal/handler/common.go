package handler // handler defines http handlers

import (
	"context"

	"github.com/lmoretti/seatplan/internal/queue"
	"github.com/lmoretti/seatplan/internal/repository"
)

// LayoutHandler bundles the repositories needed to serve layouts and
// seat assignments. Publish is optional; when set, a successful seat
// assignment emits an event through it. Failures to publish never fail
// the request.
type LayoutHandler struct {
	LayoutRepo     *repository.LayoutRepo
	AssignmentRepo *repository.AssignmentRepo
	Publish        func(ctx context.Context, ev queue.SeatAssignedEvent) error
}

// NewLayoutHandler constructs a LayoutHandler and panics if a repository is nil.
func NewLayoutHandler(layoutRepo *repository.LayoutRepo, assignmentRepo *repository.AssignmentRepo) *LayoutHandler {
	if layoutRepo == nil || assignmentRepo == nil {
		panic("nil repository passed to NewLayoutHandler")
	}
	return &LayoutHandler{
		LayoutRepo:     layoutRepo,
		AssignmentRepo: assignmentRepo,
	}
}

// GuestHandler bundles guest persistence for the guest CRUD endpoints.
type GuestHandler struct {
	GuestRepo *repository.GuestRepo
}

// NewGuestHandler constructs a GuestHandler and panics if the repository is nil.
func NewGuestHandler(guestRepo *repository.GuestRepo) *GuestHandler {
	if guestRepo == nil {
		panic("nil repository passed to NewGuestHandler")
	}
	return &GuestHandler{GuestRepo: guestRepo}
}
