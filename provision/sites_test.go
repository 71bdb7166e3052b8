package provision

import (
	"context"
	"testing"
)

func TestSiteNaming(t *testing.T) {
	tests := []struct {
		index   int
		number  string
		name    string
		baseURL string
	}{
		{0, "000", "L337-000", "https://main--wknd-summit2025--adobe.aem.live/lab-337/000/"},
		{7, "007", "L337-007", "https://main--wknd-summit2025--adobe.aem.live/lab-337/007/"},
		{42, "042", "L337-042", "https://main--wknd-summit2025--adobe.aem.live/lab-337/042/"},
		{199, "199", "L337-199", "https://main--wknd-summit2025--adobe.aem.live/lab-337/199/"},
	}

	for _, test := range tests {
		if got := SiteNumber(test.index); got != test.number {
			t.Errorf("SiteNumber(%d) = %v, expected %v", test.index, got, test.number)
		}
		if got := SiteName(test.index); got != test.name {
			t.Errorf("SiteName(%d) = %v, expected %v", test.index, got, test.name)
		}
		if got := BaseURL(test.index); got != test.baseURL {
			t.Errorf("BaseURL(%d) = %v, expected %v", test.index, got, test.baseURL)
		}
	}
}

func TestEnsureSiteSkipsExisting(t *testing.T) {
	backoffice := newFakeBackoffice()
	existing := backoffice.addSite(BaseURL(7))

	p := &Provisioner{
		Backoffice:     backoffice,
		OrganizationID: DefaultOrganizationID,
		DeliveryType:   DefaultDeliveryType,
	}

	site, created, err := p.EnsureSite(context.Background(), 7)
	if err != nil {
		t.Fatalf("Unexpected error from EnsureSite (%v)", err)
	}

	if created {
		t.Errorf("Expected created=false for existing site")
	}
	if site.ID != existing.ID {
		t.Errorf("Incorrect site ID\n   expected: %v\n   got:      %v\n", existing.ID, site.ID)
	}
	if backoffice.siteCreates != 0 {
		t.Errorf("Expected no site creates, got %d", backoffice.siteCreates)
	}
}

func TestEnsureSiteCreatesMissing(t *testing.T) {
	backoffice := newFakeBackoffice()

	p := &Provisioner{
		Backoffice:     backoffice,
		OrganizationID: DefaultOrganizationID,
		DeliveryType:   DefaultDeliveryType,
	}

	site, created, err := p.EnsureSite(context.Background(), 3)
	if err != nil {
		t.Fatalf("Unexpected error from EnsureSite (%v)", err)
	}

	if !created {
		t.Errorf("Expected created=true for missing site")
	}
	if backoffice.siteCreates != 1 {
		t.Errorf("Expected exactly 1 site create, got %d", backoffice.siteCreates)
	}

	if site.BaseURL != BaseURL(3) {
		t.Errorf("Incorrect base URL\n   expected: %v\n   got:      %v\n", BaseURL(3), site.BaseURL)
	}
	if site.Name != "L337-003" {
		t.Errorf("Incorrect site name\n   expected: %v\n   got:      %v\n", "L337-003", site.Name)
	}
	if site.OrganizationID != DefaultOrganizationID {
		t.Errorf("Incorrect organization ID\n   expected: %v\n   got:      %v\n", DefaultOrganizationID, site.OrganizationID)
	}
	if site.DeliveryType != DefaultDeliveryType {
		t.Errorf("Incorrect delivery type\n   expected: %v\n   got:      %v\n", DefaultDeliveryType, site.DeliveryType)
	}
}

func TestEnsureSiteIsIdempotent(t *testing.T) {
	backoffice := newFakeBackoffice()

	p := &Provisioner{
		Backoffice:     backoffice,
		OrganizationID: DefaultOrganizationID,
		DeliveryType:   DefaultDeliveryType,
	}

	first, _, err := p.EnsureSite(context.Background(), 9)
	if err != nil {
		t.Fatalf("Unexpected error from EnsureSite (%v)", err)
	}

	second, created, err := p.EnsureSite(context.Background(), 9)
	if err != nil {
		t.Fatalf("Unexpected error from repeat EnsureSite (%v)", err)
	}

	if created {
		t.Errorf("Expected created=false on repeat call")
	}
	if first.ID != second.ID {
		t.Errorf("EnsureSite not idempotent\n   expected: %v\n   got:      %v\n", first.ID, second.ID)
	}
	if backoffice.siteCreates != 1 {
		t.Errorf("Expected exactly 1 site create, got %d", backoffice.siteCreates)
	}
}
