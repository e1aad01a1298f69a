package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `corkboard keeps kanban boards: Boards → Lists → Cards, with users assigned to cards.

Core concepts:
- Board: a titled set of lists. Lists and cards are ordered by integer position; new ones always go last.
- Trash: deleting is two-stage. send_to_trash hides an entity, restore brings it back, purge removes it for good.
  Purge only accepts entities already in the trash. Trashing a board or list leaves its children's own flags alone.
- Mirror: the server holds an in-memory copy of each opened board. Every write goes to the store first and
  the copy changes only if the store accepts it. Responses carry a "refresh" field saying how the copy caught up.

Default workflow:
1) list_boards (or create_board), then open_board to load a board.
2) get_board whenever you need the current tree; it reads the server's copy, not the store.
3) create_list / create_card / move_card / rename_* / update_card to edit.
4) assign_user / unassign_user return the card's full assignee set as re-read from the store.
5) send_to_trash / restore / purge / list_trash for deletion.
6) get_recent_activity to see what changed on a board.

Error codes: PRECONDITION_FAILED (rejected before any write), TRANSPORT_ERROR (store unreachable or write
refused; the board copy is unchanged), NOT_FOUND, CONFLICT, DESYNC (write applied but the board copy lacked the
target; call open_board), INVALID_INPUT.

Docs:
- corkboard://docs/index
- corkboard://docs/trash
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "corkboard://docs/index",
		Name:        "docs_index",
		Title:       "corkboard docs index",
		Description: "Entry point: the board model, ordering rules and how writes reach the board copy.",
		Content: `# corkboard: Agent Docs Index

## Model

- A board holds lists; a list holds cards; cards have a title, a description and assignees.
- Positions are integers. A new list or card is placed after the highest live sibling, so gaps are normal.
  compact_list renumbers a list's cards to 0..n-1 without changing their order.
- Moving a card to another list appends it there. Moving within the same list does nothing.

## Refresh values

- none: nothing changed.
- patched: the board copy was edited in place after the write.
- reread: one relation (assignees) was re-read from the store.
- reloaded: the whole board was read again (after trash operations).

## Other docs

- corkboard://docs/trash
`,
	},
	{
		URI:         "corkboard://docs/trash",
		Name:        "docs_trash",
		Title:       "Trash lifecycle",
		Description: "States and transitions for trash, restore and purge.",
		Content: `# Trash lifecycle

States: active → trashed → purged. Only these moves are allowed:

- active → trashed (send_to_trash)
- trashed → active (restore)
- trashed → purged (purge)

Anything else fails with PRECONDITION_FAILED before the store is touched.

- Trashing a board hides it from list_boards; its lists and cards keep their own flags.
- Restoring a list or card places it after its live siblings.
- Purging removes only the named entity. Its children stay in the store but are no longer reachable.
- list_trash without board_id lists trashed boards; with board_id it also lists that board's trashed lists and cards.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		doc := doc

		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
