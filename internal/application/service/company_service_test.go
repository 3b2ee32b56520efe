package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestUpsertProfileCreatesThenUpdates(t *testing.T) {
	repo := &fakeCompanyRepo{}
	svc := NewCompanyService(repo)
	ctx := context.Background()

	created, err := svc.UpsertProfile(ctx, &UpsertCompanyInput{
		Name:        "Alka Enterprises",
		CompanyCode: "ALK",
		StateName:   "Maharashtra",
		StateCode:   "27",
	})
	if err != nil {
		t.Fatalf("UpsertProfile() error = %v", err)
	}
	if created.ID == uuid.Nil {
		t.Error("created profile has no id")
	}

	updated, err := svc.UpsertProfile(ctx, &UpsertCompanyInput{
		Name:        "Alka Enterprises",
		CompanyCode: "ALK2",
		GSTIN:       "27AAAAA0000A1Z5",
	})
	if err != nil {
		t.Fatalf("UpsertProfile() error = %v", err)
	}
	if updated.ID != created.ID {
		t.Error("second save created a new profile instead of updating")
	}
	if updated.CompanyCode != "ALK2" || updated.GSTIN != "27AAAAA0000A1Z5" {
		t.Errorf("updated profile = %+v", updated)
	}

	profile, err := svc.GetProfile(ctx)
	if err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}
	if profile.CompanyCode != "ALK2" {
		t.Errorf("profile code = %s, want ALK2", profile.CompanyCode)
	}
}

func TestUpsertProfileRequiresNameAndCode(t *testing.T) {
	svc := NewCompanyService(&fakeCompanyRepo{})
	ctx := context.Background()

	if _, err := svc.UpsertProfile(ctx, &UpsertCompanyInput{CompanyCode: "ALK"}); err == nil {
		t.Error("UpsertProfile() = nil error without a name")
	}
	if _, err := svc.UpsertProfile(ctx, &UpsertCompanyInput{Name: "Alka"}); err == nil {
		t.Error("UpsertProfile() = nil error without a company code")
	}
}

func TestGetProfileWhenUnconfigured(t *testing.T) {
	svc := NewCompanyService(&fakeCompanyRepo{})
	if _, err := svc.GetProfile(context.Background()); err == nil {
		t.Error("GetProfile() = nil error when no profile is saved")
	}
}
