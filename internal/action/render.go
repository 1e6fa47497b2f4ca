package action

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"foodnetwork/internal/i18n"
	"foodnetwork/internal/styles"
	"foodnetwork/pkg/models"
	"foodnetwork/pkg/utils"
)

const statusColumn = 2

// KeyStatus is "Active" or "Deleted on <time>"
func KeyStatus(k models.APIKey) string {
	if k.IsActive() {
		return i18n.T("key_status_active")
	}
	return i18n.Tf("key_status_deleted", map[string]interface{}{
		"DeletedAt": utils.FormatTimestamp(*k.DeletedAt),
	})
}

// KeyRows returns one id/created/status row per key
func KeyRows(keys []models.APIKey) [][]string {
	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, []string{k.ID, utils.FormatTimestamp(k.CreatedAt), KeyStatus(k)})
	}
	return rows
}

// RenderKeyTable draws the key list
func RenderKeyTable(keys []models.APIKey) string {
	if len(keys) == 0 {
		return styles.HelpStyle.Render(i18n.T("no_keys"))
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.TableBorderStyle).
		Headers(i18n.T("table_header_id"), i18n.T("table_header_created"), i18n.T("table_header_status")).
		Rows(KeyRows(keys)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styles.TableHeaderStyle
			case col != statusColumn:
				return styles.TableCellStyle
			case row >= 0 && row < len(keys) && keys[row].IsActive():
				return styles.TableActiveCellStyle
			default:
				return styles.TableDeletedCellStyle
			}
		})

	return t.Render()
}

// KeyRevealMessage shows a freshly minted token with its retention warning
func KeyRevealMessage(token string) string {
	return strings.Join([]string{
		"",
		styles.TokenStyle.Render(i18n.Tf("key_reveal", map[string]interface{}{"Token": token})),
		styles.WarningStyle.Render(i18n.T("key_reveal_warning")),
		"",
		styles.HelpStyle.Render(i18n.T("key_reveal_footer")),
	}, "\n")
}
