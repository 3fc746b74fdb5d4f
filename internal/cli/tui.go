package cli

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/tickerhub/cryptocompare/pkg/cryptocompare"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// coinRow - one coin from the catalogue, flattened for display
// =============================================================================

// coinRow is one entry of the coinlist payload's Data map.
type coinRow struct {
	Symbol    string
	Name      string
	Algorithm string
	ProofType string
	SortOrder int
}

// coinRowsFromPayload flattens the coinlist payload into rows ordered by the
// API's sort order. Entries without a parsable SortOrder sink to the end.
func coinRowsFromPayload(payload cryptocompare.Payload) []coinRow {
	data, _ := payload["Data"].(map[string]any)
	rows := make([]coinRow, 0, len(data))
	for symbol, v := range data {
		coin, ok := v.(map[string]any)
		if !ok {
			continue
		}
		row := coinRow{Symbol: symbol, SortOrder: math.MaxInt}
		if name, _ := coin["CoinName"].(string); name != "" {
			row.Name = name
		} else if name, _ := coin["Name"].(string); name != "" {
			row.Name = name
		}
		row.Algorithm, _ = coin["Algorithm"].(string)
		row.ProofType, _ = coin["ProofType"].(string)
		if so, _ := coin["SortOrder"].(string); so != "" {
			if n, err := strconv.Atoi(so); err == nil {
				row.SortOrder = n
			}
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].SortOrder != rows[j].SortOrder {
			return rows[i].SortOrder < rows[j].SortOrder
		}
		return rows[i].Symbol < rows[j].Symbol
	})
	return rows
}

// renderCoinTable renders rows as a bordered table, truncated to limit
// entries (0 = all).
func renderCoinTable(rows []coinRow, limit int) string {
	total := len(rows)
	if limit > 0 && limit < total {
		rows = rows[:limit]
	}

	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = []string{r.Symbol, r.Name, r.Algorithm, r.ProofType}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleTableBorder).
		Headers("Symbol", "Name", "Algorithm", "Proof").
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleTableHeader
			}
			return lipgloss.NewStyle()
		})

	out := t.Render()
	if len(rows) < total {
		out += "\n" + listDimStyle.Render(fmt.Sprintf("  showing %d of %d coins (--limit 0 for all, --browse to scroll)", len(rows), total))
	}
	return out
}

// =============================================================================
// CoinListModel - Interactive coin catalogue browser
// =============================================================================

// CoinListModel is the bubbletea model for scrolling the coin catalogue.
type CoinListModel struct {
	Coins  []coinRow
	Cursor int
	Height int
	Offset int
}

// NewCoinListModel creates a new coin browser model.
func NewCoinListModel(coins []coinRow) CoinListModel {
	return CoinListModel{
		Coins:  coins,
		Cursor: 0,
		Height: 15,
		Offset: 0,
	}
}

func (m CoinListModel) Init() tea.Cmd {
	return nil
}

func (m CoinListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Coins)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m CoinListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Coin Catalogue"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Coins) {
		end = len(m.Coins)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		r := m.Coins[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		rows = append(rows, []string{cursor, r.Symbol, r.Name, r.Algorithm, r.ProofType})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleTableBorder).
		Headers("", "Symbol", "Name", "Algorithm", "Proof").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleTableHeader
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Coins))))

	return b.String()
}

// browseCoins runs the interactive coin browser until the user quits.
func browseCoins(rows []coinRow) error {
	_, err := tea.NewProgram(NewCoinListModel(rows)).Run()
	return err
}
