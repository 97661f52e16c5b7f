package debugui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/shooter/ecs"
)

// EntityRow is one line of the entity browser.
type EntityRow struct {
	ID      ecs.EntityId
	Kind    string
	Summary string
	// Record points at the live entity data, for the inspector.
	Record any
}

// EntityBrowser lists entities supplied by the application with a text
// filter, sortable columns and paging.
type EntityBrowser struct {
	selectedEntityId   ecs.EntityId
	filterText         string
	maxEntitiesPerPage int
	currentPage        int
	sortColumn         int
	sortAscending      bool
}

func NewEntityBrowser(maxEntitiesPerPage int) *EntityBrowser {
	return &EntityBrowser{
		maxEntitiesPerPage: maxEntitiesPerPage,
		sortAscending:      true,
	}
}

func (eb *EntityBrowser) Render(rows []EntityRow) {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.InputTextWithHint("##search", "Search...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
	}

	filtered := filterRows(rows, eb.filterText)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Entity ID")
		imgui.TableSetupColumn("Kind")
		imgui.TableSetupColumn("State")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			eb.sortColumn = int(spec.ColumnIndex())
			eb.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sortSpecs.SetSpecsDirty(false)
		}
		sortRows(filtered, eb.sortColumn, eb.sortAscending)

		start, end := pageBounds(len(filtered), eb.currentPage, eb.maxEntitiesPerPage)
		for _, entity := range filtered[start:end] {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := eb.selectedEntityId == entity.ID
			label := fmt.Sprintf("%d:%d", entity.ID.Kind(), entity.ID.Index())
			if imgui.SelectableBoolV(label, isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selectedEntityId = entity.ID
			}

			imgui.TableNextColumn()
			imgui.Text(entity.Kind)

			imgui.TableNextColumn()
			imgui.Text(entity.Summary)
		}

		imgui.EndTable()
	}

	if len(filtered) > eb.maxEntitiesPerPage {
		totalPages := (len(filtered) + eb.maxEntitiesPerPage - 1) / eb.maxEntitiesPerPage
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
		eb.currentPage = 0
		imgui.Text(fmt.Sprintf("Total: %d entities", len(filtered)))
	}

	imgui.End()
}

func (eb *EntityBrowser) GetSelectedEntity() ecs.EntityId {
	return eb.selectedEntityId
}

// Remap follows the selected entity through a table compaction. translate
// maps an old id to its new one and reports false for ids it does not cover
// or that are gone; a gone selection is cleared.
func (eb *EntityBrowser) Remap(kind ecs.Kind, translate func(ecs.EntityId) (ecs.EntityId, bool)) {
	if eb.selectedEntityId == 0 || eb.selectedEntityId.Kind() != kind {
		return
	}
	id, ok := translate(eb.selectedEntityId)
	if !ok {
		id = 0
	}
	eb.selectedEntityId = id
}

// Selected returns the row of the selected entity, if it is still present.
func (eb *EntityBrowser) Selected(rows []EntityRow) (EntityRow, bool) {
	for _, r := range rows {
		if r.ID == eb.selectedEntityId {
			return r, true
		}
	}
	return EntityRow{}, false
}

// pageBounds returns the slice bounds of page within n rows.
func pageBounds(n, page, perPage int) (int, int) {
	start := min(page*perPage, n)
	end := min(start+perPage, n)
	return start, end
}

func sortRows(rows []EntityRow, column int, ascending bool) {
	slices.SortStableFunc(rows, func(a, b EntityRow) int {
		var c int
		switch column {
		case 1:
			c = strings.Compare(a.Kind, b.Kind)
		case 2:
			c = strings.Compare(a.Summary, b.Summary)
		default:
			c = 0
		}
		if c == 0 {
			c = compareIds(a.ID, b.ID)
		}
		if !ascending {
			return -c
		}
		return c
	})
}

func compareIds(a, b ecs.EntityId) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func filterRows(rows []EntityRow, filterText string) []EntityRow {
	if filterText == "" {
		return slices.Clone(rows)
	}

	filtered := make([]EntityRow, 0, len(rows))
	filterLower := strings.ToLower(filterText)

	for _, entity := range rows {
		idStr := fmt.Sprintf("%d:%d", entity.ID.Kind(), entity.ID.Index())
		if !strings.Contains(idStr, filterLower) &&
			!strings.Contains(strings.ToLower(entity.Kind), filterLower) &&
			!strings.Contains(strings.ToLower(entity.Summary), filterLower) {
			continue
		}
		filtered = append(filtered, entity)
	}

	return filtered
}
