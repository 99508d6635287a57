package catalogmock

import (
	"context"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/radio4000/r4fs/internal/catalog"
)

func TestMockCatalogExpectations(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewMockCatalog(ctrl)

	m.EXPECT().StorageBaseURL().Return("https://example.supabase.co")
	m.EXPECT().Channel(gomock.Any(), "test-radio").Return(catalog.Channel{Slug: "test-radio"}, nil)

	if got := m.StorageBaseURL(); got != "https://example.supabase.co" {
		t.Errorf("StorageBaseURL() = %q", got)
	}
	ch, err := m.Channel(context.Background(), "test-radio")
	if err != nil || ch.Slug != "test-radio" {
		t.Errorf("Channel() = %+v, %v", ch, err)
	}
}
