package debugui

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/platformer/ecs"
)

// EntityInfo is one row of the entity browser.
type EntityInfo struct {
	Entity ecs.Entity
	Tag    ecs.Tag
	Kinds  []string
}

// Sort columns of the entity table.
const (
	ColumnIndex = iota
	ColumnGeneration
	ColumnTag
	ColumnComponents
)

// EntityBrowser lists the committed entities of a registry with a text
// filter, a sortable table and paging.
type EntityBrowser struct {
	entities      []EntityInfo
	selected      ecs.Entity
	hasSelection  bool
	filterText    string
	sortColumn    int
	sortAscending bool
	pageSize      int
	currentPage   int
}

func NewEntityBrowser(pageSize int) *EntityBrowser {
	if pageSize <= 0 {
		pageSize = 100
	}
	return &EntityBrowser{
		sortAscending: true,
		pageSize:      pageSize,
	}
}

// Selected returns the entity picked in the table, or false if none is.
func (eb *EntityBrowser) Selected() (ecs.Entity, bool) {
	return eb.selected, eb.hasSelection
}

// Select makes e the inspected entity.
func (eb *EntityBrowser) Select(e ecs.Entity) {
	eb.selected = e
	eb.hasSelection = true
}

func (eb *EntityBrowser) Render(m *ecs.Manager) {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	eb.entities = CollectEntities(m, eb.entities[:0])
	SortEntities(eb.entities, eb.sortColumn, eb.sortAscending)

	imgui.InputTextWithHint("##search", "Search...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
		eb.currentPage = 0
	}

	filtered := FilterEntities(eb.entities, eb.filterText)
	totalPages := (len(filtered) + eb.pageSize - 1) / eb.pageSize
	if eb.currentPage >= totalPages {
		eb.currentPage = max(totalPages-1, 0)
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 4, tableFlags, imgui.NewVec2(0, 300), 0) {
		imgui.TableSetupColumn("Index")
		imgui.TableSetupColumn("Generation")
		imgui.TableSetupColumn("Tag")
		imgui.TableSetupColumn("Components")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			eb.sortColumn = int(spec.ColumnIndex())
			eb.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			SortEntities(eb.entities, eb.sortColumn, eb.sortAscending)
			filtered = FilterEntities(eb.entities, eb.filterText)
			sortSpecs.SetSpecsDirty(false)
		}

		start := eb.currentPage * eb.pageSize
		end := min(start+eb.pageSize, len(filtered))

		for _, info := range filtered[start:end] {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := eb.hasSelection && eb.selected == info.Entity
			if imgui.SelectableBoolV(fmt.Sprintf("%d", info.Entity.Index()), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.Select(info.Entity)
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", info.Entity.Generation()))

			imgui.TableNextColumn()
			imgui.Text(info.Tag.String())

			imgui.TableNextColumn()
			imgui.Text(strings.Join(info.Kinds, ", "))
		}

		imgui.EndTable()
	}

	if totalPages > 1 {
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.currentPage+1, totalPages, len(filtered)))
		imgui.SameLine()
		if imgui.Button("Prev") && eb.currentPage > 0 {
			eb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && eb.currentPage < totalPages-1 {
			eb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d entities", len(filtered)))
	}

	imgui.End()
}

// CollectEntities appends a row for every active committed entity of m to
// dst.
func CollectEntities(m *ecs.Manager, dst []EntityInfo) []EntityInfo {
	pool := m.Pool()
	for _, e := range m.Entities() {
		if !pool.IsActive(e) {
			continue
		}
		kinds := pool.KindsOf(e)
		names := make([]string, len(kinds))
		for i, k := range kinds {
			names[i] = k.String()
		}
		dst = append(dst, EntityInfo{Entity: e, Tag: pool.Tag(e), Kinds: names})
	}
	return dst
}

// SortEntities orders rows in place by one of the Column constants. Ties
// keep their relative order.
func SortEntities(rows []EntityInfo, column int, ascending bool) {
	slices.SortStableFunc(rows, func(a, b EntityInfo) int {
		var c int
		switch column {
		case ColumnGeneration:
			c = cmp.Compare(a.Entity.Generation(), b.Entity.Generation())
		case ColumnTag:
			c = strings.Compare(a.Tag.String(), b.Tag.String())
		case ColumnComponents:
			c = strings.Compare(strings.Join(a.Kinds, ","), strings.Join(b.Kinds, ","))
		default:
			c = cmp.Compare(a.Entity.Index(), b.Entity.Index())
		}
		if !ascending {
			return -c
		}
		return c
	})
}

// FilterEntities returns the rows whose index, tag or component names
// contain text, ignoring case. An empty filter returns rows unchanged.
func FilterEntities(rows []EntityInfo, text string) []EntityInfo {
	if text == "" {
		return rows
	}

	needle := strings.ToLower(text)
	filtered := make([]EntityInfo, 0, len(rows))
	for _, info := range rows {
		idStr := fmt.Sprintf("%d", info.Entity.Index())
		kinds := strings.ToLower(strings.Join(info.Kinds, " "))
		if strings.Contains(idStr, needle) ||
			strings.Contains(info.Tag.String(), needle) ||
			strings.Contains(kinds, needle) {
			filtered = append(filtered, info)
		}
	}
	return filtered
}
