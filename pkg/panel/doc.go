// Package panel provides layout containers built on core.SimplePanel.
//
// Flex, grid and responsive grid panels wrap each child in a wrapper element
// created at render time. Wrappers are not widgets: they carry the per-child
// placement (order, grow, grid lines, column span) and a key derived from
// the child's key so reconciliation keeps them paired with their child.
//
// Split, stack, tab and dock panels arrange children without wrappers:
//
//	tabs := panel.NewTabPanel()
//	tabs.AddTab("Overview", overview)
//	tabs.AddTab("Logs", logs)
//	tabs.SetActiveIndex(1)
//
// Every panel reports itself as the parent of the children added to it,
// including panels composed from other panels.
package panel
