package service

import (
	"context"
	"fmt"

	"business_directory/internal/repository"
)

// Authorizer decides whether a subject may act on a resource owned by ownerID
type Authorizer interface {
	HasAccess(ctx context.Context, subjectID, ownerID int) (bool, error)
	IsAdmin(ctx context.Context, subjectID int) (bool, error)
}

// AccessPolicy implements the self-or-admin rule against the user store.
// Every call performs one lookup; nothing is cached between requests.
type AccessPolicy struct {
	users repository.UserRepository
}

func NewAccessPolicy(users repository.UserRepository) *AccessPolicy {
	return &AccessPolicy{users: users}
}

// HasAccess reports whether subjectID is ownerID or an admin.
// A subject with no user record is denied.
func (p *AccessPolicy) HasAccess(ctx context.Context, subjectID, ownerID int) (bool, error) {
	isAdmin, exists, err := p.lookup(ctx, subjectID)
	if err != nil || !exists {
		return false, err
	}
	return subjectID == ownerID || isAdmin, nil
}

// IsAdmin reports whether subjectID belongs to an existing admin user
func (p *AccessPolicy) IsAdmin(ctx context.Context, subjectID int) (bool, error) {
	isAdmin, _, err := p.lookup(ctx, subjectID)
	return isAdmin, err
}

func (p *AccessPolicy) lookup(ctx context.Context, subjectID int) (isAdmin, exists bool, err error) {
	user, err := p.users.FindByID(ctx, subjectID)
	if err != nil {
		return false, false, fmt.Errorf("failed to look up subject %d: %w", subjectID, err)
	}
	if user == nil {
		return false, false, nil
	}
	return user.Admin, true, nil
}

// authorize turns a policy decision into ErrForbidden
func authorize(ctx context.Context, policy Authorizer, subjectID, ownerID int) error {
	ok, err := policy.HasAccess(ctx, subjectID, ownerID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}
	return nil
}
