package usecase

import (
	"context"

	"jobboard_backend/internal/domain/entity"
)

// Conversation returns the messages between the caller and the user behind
// companyID.
func (u *candidateUsecase) Conversation(ctx context.Context, userID, companyID string) ([]entity.Message, error) {
	c, err := u.repo.FindCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return u.repo.ListConversation(ctx, userID, c.UserID)
}

// MarkRead marks every unread message the company sent to the caller as
// read and returns the number changed.
func (u *candidateUsecase) MarkRead(ctx context.Context, userID, companyID string) (int64, error) {
	c, err := u.repo.FindCompany(ctx, companyID)
	if err != nil {
		return 0, err
	}
	return u.repo.MarkRead(ctx, c.UserID, userID)
}
