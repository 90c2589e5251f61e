package usecase

import (
	"testing"
	"time"

	"interest/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestBulkOutcome_RedirectArgs(t *testing.T) {
	tests := []struct {
		name     string
		outcome  *BulkOutcome
		expected map[string]string
	}{
		{
			name:     "bad nonce",
			outcome:  &BulkOutcome{Status: BulkBadNonce},
			expected: map[string]string{"success": "0", "errcode": "bad_nonce"},
		},
		{
			name:     "no ids",
			outcome:  &BulkOutcome{Status: BulkNoIDs},
			expected: map[string]string{"success": "0", "errcode": "no_ids"},
		},
		{
			name:     "success",
			outcome:  &BulkOutcome{Status: BulkSuccess, Count: 2},
			expected: map[string]string{"success": "1", "action": "unsubscribed", "count": "2"},
		},
		{
			name:     "success with nothing deleted",
			outcome:  &BulkOutcome{Status: BulkSuccess},
			expected: map[string]string{"success": "1", "action": "unsubscribed", "count": "0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := tt.outcome.RedirectArgs()

			assert.Len(t, args, len(tt.expected))
			for key, value := range tt.expected {
				assert.Equal(t, value, args.Get(key), key)
			}
		})
	}
}

func TestBulkOutcome_IdleHasNoRedirect(t *testing.T) {
	var nilOutcome *BulkOutcome

	assert.False(t, nilOutcome.Redirect())
	assert.False(t, (&BulkOutcome{Status: BulkIdle}).Redirect())
	assert.Nil(t, (&BulkOutcome{Status: BulkIdle}).RedirectArgs())
}

func TestIsBulkUnsubscribe(t *testing.T) {
	assert.True(t, IsBulkUnsubscribe("wc_product_subs_unsubscribe"))
	assert.False(t, IsBulkUnsubscribe("unsubscribe"))
	assert.False(t, IsBulkUnsubscribe("-1"))
}

func TestSettingsPageHook(t *testing.T) {
	assert.Equal(t, "product_page_product-interest-list", SettingsPageHook("product-interest-list"))
	assert.Equal(t, "product_page_custom", SettingsPageHook("  custom "))
}

func TestNewRowTable_SortableColumns(t *testing.T) {
	table := NewRowTable(10)

	assert.True(t, table.IsSortable(ColumnVisibleName))
	assert.True(t, table.IsSortable(ColumnProductName))
	assert.True(t, table.IsSortable(ColumnSignupDate))
	assert.False(t, table.IsSortable(ColumnCheckbox))
}

func TestRowSortValue(t *testing.T) {
	row := &entity.Row{
		DisplayName: "Alice",
		ProductName: "Walnut Desk",
		SignupDate:  time.Date(2024, time.March, 1, 9, 5, 0, 0, time.FixedZone("CST", 8*3600)),
	}

	assert.Equal(t, "Alice", RowSortValue(row, ColumnVisibleName))
	assert.Equal(t, "Walnut Desk", RowSortValue(row, ColumnProductName))
	assert.Equal(t, "2024-03-01 01:05:00", RowSortValue(row, ColumnSignupDate))
	assert.Empty(t, RowSortValue(row, ColumnCheckbox))

	earlier := &entity.Row{SignupDate: time.Date(2023, time.December, 31, 23, 0, 0, 0, time.UTC)}
	assert.Less(t, RowSortValue(earlier, ColumnSignupDate), RowSortValue(row, ColumnSignupDate))
}
