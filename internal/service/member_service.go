package service

import (
	"context"
	"strings"

	"taskboard/internal/model"
	"taskboard/internal/repository"
)

type MemberService struct {
	members    *repository.MemberRepository
	templateID string
}

func NewMemberService(members *repository.MemberRepository, templateID string) *MemberService {
	return &MemberService{members: members, templateID: templateID}
}

// List returns the template roster in sheet order
func (s *MemberService) List(ctx context.Context) ([]model.Member, error) {
	if err := requireTemplate(s.templateID); err != nil {
		return nil, err
	}
	members, err := s.members.List(ctx, s.templateID)
	if err != nil {
		return nil, upstream("fetch members", err)
	}
	return members, nil
}

// FindByEmail returns nil when nobody on the roster has the email
func (s *MemberService) FindByEmail(ctx context.Context, email string) (*model.Member, error) {
	if strings.TrimSpace(email) == "" {
		return nil, required("email")
	}
	if err := requireTemplate(s.templateID); err != nil {
		return nil, err
	}
	m, err := s.members.FindByEmail(ctx, s.templateID, email)
	if err != nil {
		return nil, upstream("fetch members", err)
	}
	return m, nil
}
