package role

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryRoleRepository implements RoleRepository using in-memory storage
type InMemoryRoleRepository struct {
	mu          sync.RWMutex
	assignments map[uuid.UUID]RoleAssignment // assignmentID -> RoleAssignment
}

// NewInMemoryRoleRepository creates a new in-memory role repository
func NewInMemoryRoleRepository() *InMemoryRoleRepository {
	return &InMemoryRoleRepository{
		assignments: make(map[uuid.UUID]RoleAssignment),
	}
}

// GetByUserID returns the assignment held by userID
func (r *InMemoryRoleRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (RoleAssignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.assignments {
		if a.UserID == userID {
			return a, nil
		}
	}
	return RoleAssignment{}, ErrRoleAssignmentNotFound
}

// CreateAssignment inserts a new assignment
func (r *InMemoryRoleRepository) CreateAssignment(ctx context.Context, userID uuid.UUID, role string) (RoleAssignment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	a := RoleAssignment{
		ID:        uuid.New(),
		UserID:    userID,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.assignments[a.ID] = a
	return a, nil
}

// UpdateRole changes the role of an existing assignment
func (r *InMemoryRoleRepository) UpdateRole(ctx context.Context, id uuid.UUID, role string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.assignments[id]
	if !ok {
		return ErrRoleAssignmentNotFound
	}
	a.Role = role
	a.UpdatedAt = time.Now().UTC()
	r.assignments[id] = a
	return nil
}

// ReassignUser moves assignments from one identity to another
func (r *InMemoryRoleRepository) ReassignUser(ctx context.Context, fromUserID, toUserID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for id, a := range r.assignments {
		if a.UserID == fromUserID {
			a.UserID = toUserID
			a.UpdatedAt = time.Now().UTC()
			r.assignments[id] = a
			n++
		}
	}
	return n, nil
}

// DeleteByUserID removes all assignments of userID
func (r *InMemoryRoleRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for id, a := range r.assignments {
		if a.UserID == userID {
			delete(r.assignments, id)
			n++
		}
	}
	return n, nil
}

// SeedAssignment adds an assignment directly (for testing/initialization)
func (r *InMemoryRoleRepository) SeedAssignment(userID uuid.UUID, role string) RoleAssignment {
	a, _ := r.CreateAssignment(context.Background(), userID, role)
	return a
}

// All returns a snapshot of every assignment
func (r *InMemoryRoleRepository) All() []RoleAssignment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]RoleAssignment, 0, len(r.assignments))
	for _, a := range r.assignments {
		result = append(result, a)
	}
	return result
}
