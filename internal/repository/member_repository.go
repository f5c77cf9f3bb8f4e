package repository

import (
	"context"
	"strings"

	"taskboard/internal/model"
	"taskboard/internal/spreadsheet"
)

type MemberRepository struct {
	gw spreadsheet.Gateway
}

func NewMemberRepository(gw spreadsheet.Gateway) *MemberRepository {
	return &MemberRepository{gw: gw}
}

// List reads the roster of the template spreadsheet
func (r *MemberRepository) List(ctx context.Context, templateID string) ([]model.Member, error) {
	rows, err := r.gw.GetValues(ctx, templateID, spreadsheet.Columns(MemberSheet, "A", "C", FirstDataRow))
	if err != nil {
		return nil, err
	}
	return DecodeMembers(rows), nil
}

// FindByEmail returns nil when no roster member has the email
func (r *MemberRepository) FindByEmail(ctx context.Context, templateID, email string) (*model.Member, error) {
	members, err := r.List(ctx, templateID)
	if err != nil {
		return nil, err
	}
	email = strings.TrimSpace(email)
	for _, m := range members {
		if m.Email != "" && strings.EqualFold(strings.TrimSpace(m.Email), email) {
			return &m, nil
		}
	}
	return nil, nil
}
