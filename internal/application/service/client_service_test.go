package service

import (
	"context"
	"testing"

	"github.com/alkbooks/invoicing-api/internal/domain/entity"
)

func newClientService(t *testing.T) (*ClientService, *testStores) {
	t.Helper()
	stores := &testStores{client: &fakeClientRepo{}, company: &fakeCompanyRepo{}}
	return NewClientService(stores.client, stores.company), stores
}

func TestMatchByName(t *testing.T) {
	svc, stores := newClientService(t)
	stores.client.clients = []entity.Client{
		{PartyName: "Smith & Co"},
		{PartyName: "John Smith"},
		{PartyName: "Acme Traders"},
	}

	tests := []struct {
		name      string
		query     string
		wantParty string
		wantNil   bool
	}{
		{"query contained in party name", "Smith", "Smith & Co", false},
		{"party name contained in query", "Acme Traders Pvt Ltd", "Acme Traders", false},
		{"case insensitive", "smith & CO", "Smith & Co", false},
		{"first match in list order wins", "smith", "Smith & Co", false},
		{"no match", "Globex", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.MatchByName(context.Background(), tt.query)
			if err != nil {
				t.Fatalf("MatchByName() error = %v", err)
			}
			if tt.wantNil {
				if got != nil {
					t.Errorf("got %q, want no match", got.PartyName)
				}
				return
			}
			if got == nil || got.PartyName != tt.wantParty {
				t.Errorf("got %v, want %q", got, tt.wantParty)
			}
		})
	}
}

func TestFindOrCreateByNameReusesMatch(t *testing.T) {
	svc, stores := newClientService(t)
	stores.client.clients = []entity.Client{{PartyName: "Acme Traders"}}

	client, err := svc.FindOrCreateByName(context.Background(), "acme")
	if err != nil {
		t.Fatalf("FindOrCreateByName() error = %v", err)
	}
	if client.PartyName != "Acme Traders" {
		t.Errorf("matched %q, want existing client", client.PartyName)
	}
	if len(stores.client.clients) != 1 {
		t.Errorf("clients = %d, want no new client created", len(stores.client.clients))
	}
}

func TestFindOrCreateByNameCreatesWithCompanyDefaults(t *testing.T) {
	svc, stores := newClientService(t)
	stores.company.company = &entity.Company{StateName: "Maharashtra", StateCode: "27"}

	client, err := svc.FindOrCreateByName(context.Background(), "  New Party  ")
	if err != nil {
		t.Fatalf("FindOrCreateByName() error = %v", err)
	}
	if client.PartyName != "New Party" {
		t.Errorf("party name = %q, want trimmed", client.PartyName)
	}
	if client.StateName != "Maharashtra" || client.StateCode != "27" {
		t.Errorf("state = %s/%s, want company defaults", client.StateName, client.StateCode)
	}
	if len(stores.client.clients) != 1 {
		t.Errorf("clients = %d, want 1 created", len(stores.client.clients))
	}
}

func TestFindOrCreateByNameRejectsEmpty(t *testing.T) {
	svc, _ := newClientService(t)
	if _, err := svc.FindOrCreateByName(context.Background(), "   "); err == nil {
		t.Error("FindOrCreateByName() = nil error for blank name")
	}
}
