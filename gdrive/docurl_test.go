package gdrive

import (
	"testing"
)

func TestDocumentID(t *testing.T) {
	tests := []struct {
		url      string
		expected string
	}{
		{"https://docs.google.com/document/d/1AbC-def_123/edit", "1AbC-def_123"},
		{"https://docs.google.com/document/d/1AbC-def_123/edit?tab=t.0", "1AbC-def_123"},
		{"https://docs.google.com/document/d/1AbC-def_123", "1AbC-def_123"},
		{"https://drive.google.com/file/d/1XyZ/view", "1XyZ"},
		{"https://drive.google.com/file/d/1XyZ", "1XyZ"},
		{"https://drive.google.com/open?id=1Qrs", "1Qrs"},
	}

	for _, test := range tests {
		id, err := DocumentID(test.url)
		if err != nil {
			t.Fatalf("Unexpected error from DocumentID(%q) (%v)", test.url, err)
		}
		if id != test.expected {
			t.Errorf("DocumentID(%q) = %v, expected %v", test.url, id, test.expected)
		}
	}
}

func TestDocumentIDRejectsUnknownShapes(t *testing.T) {
	urls := []string{
		"https://example.com/document/d/123/edit",
		"https://docs.google.com/spreadsheets",
		"https://drive.google.com/drive/folders/abc",
		"",
	}

	for _, url := range urls {
		if id, err := DocumentID(url); err == nil {
			t.Errorf("Expected error for %q, got id %q", url, id)
		}
	}
}

func TestTargetFolder(t *testing.T) {
	tests := []struct {
		baseURL  string
		expected string
		ok       bool
	}{
		{"https://main--wknd-summit2025--adobe.aem.live/lab-337/007/", "007", true},
		{"https://main--wknd-summit2025--adobe.aem.live/lab-337/042", "042", true},
		{"  @https://main--wknd-summit2025--adobe.aem.live/lab-337/003/ ", "003", true},
		{"https://main--wknd-summit2025--adobe.aem.live/lab-337/_adobe_presenters/", "", false},
		{"https://main--wknd-summit2025--adobe.aem.live/", "", false},
		{"", "", false},
	}

	for _, test := range tests {
		name, ok := TargetFolder(test.baseURL)
		if ok != test.ok {
			t.Errorf("TargetFolder(%q) ok = %v, expected %v", test.baseURL, ok, test.ok)
		}
		if name != test.expected {
			t.Errorf("TargetFolder(%q) = %v, expected %v", test.baseURL, name, test.expected)
		}
	}
}

func TestCanonicalURLs(t *testing.T) {
	if got := DocURL("1AbC"); got != "https://docs.google.com/document/d/1AbC/edit" {
		t.Errorf("Incorrect document URL: %v", got)
	}
	if got := FolderURL("1Def"); got != "https://drive.google.com/drive/folders/1Def" {
		t.Errorf("Incorrect folder URL: %v", got)
	}
}
