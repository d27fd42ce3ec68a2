package linkage

import (
	"testing"
	"time"

	"golang.org/x/text/language"

	"github.com/octobees/leads-outreach/api/internal/entity"
)

func TestBuildView_Fallbacks(t *testing.T) {
	group := CompanyGroup{
		Key:         "acme inc",
		DisplayName: "Acme Inc",
		Contacts: []entity.RawContact{
			{ContactID: "c1", Phone: "+5511988887777"},
		},
	}

	view := BuildView(group, nil, nil, "VANESSA")

	if view.Key != "acme inc" || view.Owner != "VANESSA" || view.Name != "Acme Inc" {
		t.Fatalf("unexpected identity fields: %+v", view)
	}
	if view.Description != NoDescription {
		t.Fatalf("expected description placeholder, got %q", view.Description)
	}
	if view.Website != nil || view.Location != nil {
		t.Fatalf("expected nil website/location, got %v %v", view.Website, view.Location)
	}
	if view.Contacted || view.ContactedBy != nil || view.ContactedAt != nil {
		t.Fatalf("expected default status, got %+v", view)
	}
	if len(view.Contacts) != 1 {
		t.Fatalf("expected one contact, got %d", len(view.Contacts))
	}
	c := view.Contacts[0]
	if c.Name != NoName || c.Title != NoTitle || c.Email != NoEmail || c.Phone != "+5511988887777" {
		t.Fatalf("unexpected contact projection: %+v", c)
	}
}

func TestBuildView_EnrichmentAndStatus(t *testing.T) {
	contactedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	enrichment := &entity.EnrichmentRecord{
		CompanyName: strPtr("Acme Holdings"),
		Description: strPtr("Makes anvils"),
		City:        strPtr("São Paulo"),
		Country:     strPtr("Brazil"),
		State:       strPtr(""),
	}
	status := &entity.OutreachStatus{CompanyKey: "acme.com", Contacted: true, ContactedBy: strPtr("DEBORA"), ContactedAt: &contactedAt}
	group := CompanyGroup{Key: "acme.com", DisplayName: "Acme", DomainInput: "acme.com"}

	view := BuildView(group, enrichment, status, "VANESSA")

	if view.Name != "Acme Holdings" || view.Description != "Makes anvils" {
		t.Fatalf("expected enrichment identity, got %+v", view)
	}
	if view.Location == nil || *view.Location != "São Paulo, Brazil" {
		t.Fatalf("unexpected location: %v", view.Location)
	}
	if view.Website == nil || *view.Website != "acme.com" {
		t.Fatalf("expected domain input as website fallback, got %v", view.Website)
	}
	if !view.Contacted || view.ContactedBy == nil || *view.ContactedBy != "DEBORA" || view.ContactedAt == nil || !view.ContactedAt.Equal(contactedAt) {
		t.Fatalf("unexpected status fields: %+v", view)
	}
	if view.Contacts == nil {
		t.Fatalf("expected non-nil contacts")
	}
}

func TestBuildView_WebsiteChain(t *testing.T) {
	group := CompanyGroup{Key: "acme.com", DisplayName: "Acme", DomainInput: "acme.com"}

	view := BuildView(group, &entity.EnrichmentRecord{Website: strPtr("https://acme.com"), PrimaryDomain: strPtr("acme.io")}, nil, "")
	if view.Website == nil || *view.Website != "https://acme.com" {
		t.Fatalf("expected enrichment website, got %v", view.Website)
	}
	view = BuildView(group, &entity.EnrichmentRecord{Website: strPtr(""), PrimaryDomain: strPtr("acme.io")}, nil, "")
	if view.Website == nil || *view.Website != "acme.io" {
		t.Fatalf("expected primary domain, got %v", view.Website)
	}
}

func TestBuildView_EmptyContactedByReadsAsNull(t *testing.T) {
	status := &entity.OutreachStatus{CompanyKey: "acme", Contacted: false, ContactedBy: strPtr("")}
	view := BuildView(CompanyGroup{Key: "acme", DisplayName: "Acme"}, nil, status, "")
	if view.ContactedBy != nil {
		t.Fatalf("expected nil contacted_by, got %q", *view.ContactedBy)
	}
}

func TestAssemble_EndToEnd(t *testing.T) {
	contacts := []entity.RawContact{
		{ContactID: "1", CompanyIDRaw: strPtr("acme.com"), CompanyName: strPtr("Acme Inc"), LeadName: strPtr("Ana"), JobTitle: strPtr("CTO"), Email: strPtr("ana@acme.com"), Phone: "+551100000001"},
		{ContactID: "2", CompanyIDRaw: strPtr(""), CompanyName: strPtr("acme inc"), Phone: "+551100000002"},
		{ContactID: "3", Phone: "+551100000003"},
	}
	enrichments := []entity.EnrichmentRecord{
		{PrimaryDomain: strPtr("acme.com"), Description: strPtr("by domain")},
		{CompanyName: strPtr("ACME INC"), Description: strPtr("by name")},
	}
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	statuses := []entity.OutreachStatus{{CompanyKey: "acme inc", Contacted: true, ContactedBy: strPtr("VANESSA"), ContactedAt: &at}}

	groups := NewAggregator(language.English).Aggregate(contacts)
	views := Assemble(groups, enrichments, statuses, "VANESSA")

	if len(views) != 2 {
		t.Fatalf("expected exactly two companies, got %d", len(views))
	}
	byKey := map[string]int{}
	for i, v := range views {
		byKey[v.Key] = i
	}
	domainView := views[byKey["acme.com"]]
	nameView := views[byKey["acme inc"]]

	if domainView.Description != "by domain" || domainView.Contacted {
		t.Fatalf("unexpected domain group view: %+v", domainView)
	}
	if nameView.Description != "by name" || !nameView.Contacted || nameView.ContactedBy == nil || *nameView.ContactedBy != "VANESSA" {
		t.Fatalf("unexpected name group view: %+v", nameView)
	}
	if len(domainView.Contacts) != 1 || domainView.Contacts[0].Name != "Ana" || domainView.Contacts[0].Title != "CTO" {
		t.Fatalf("unexpected contacts: %+v", domainView.Contacts)
	}
}

func TestAssemble_Empty(t *testing.T) {
	views := Assemble(nil, nil, nil, "VANESSA")
	if views == nil || len(views) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", views)
	}
}

func TestIndexStatuses_KeepsFirst(t *testing.T) {
	index := IndexStatuses([]entity.OutreachStatus{
		{CompanyKey: "acme", Contacted: true},
		{CompanyKey: "acme", Contacted: false},
	})
	if len(index) != 1 || !index["acme"].Contacted {
		t.Fatalf("expected first record kept, got %+v", index)
	}
}
