package services

import (
	"bytes"
	"encoding/json"

	"gorm.io/datatypes"
)

type BlockType string

const (
	BlockText        BlockType = "text"
	BlockList        BlockType = "list"
	BlockSteps       BlockType = "steps"
	BlockNotice      BlockType = "notice"
	BlockTable       BlockType = "table"
	BlockServiceGrid BlockType = "service_grid"
	BlockDocument    BlockType = "document"
	BlockImage       BlockType = "image"
)

// NormalizeBlockType maps unrecognized or missing input to BlockText.
// Permissive on purpose: the editor may send types this build doesn't know.
func NormalizeBlockType(s string) BlockType {
	switch BlockType(s) {
	case BlockList, BlockSteps, BlockNotice, BlockTable, BlockServiceGrid, BlockDocument, BlockImage:
		return BlockType(s)
	default:
		return BlockText
	}
}

// Per-type payloads carried in a block's Data column.

type ListData struct {
	Items []string `json:"items"`
}

type Step struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	List        []string `json:"list"`
}

type StepsData struct {
	Steps []Step `json:"steps"`
}

type TableData struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

type GridItem struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	List        []string `json:"list"`
}

type GridData struct {
	Items []GridItem `json:"items"`
}

type DocumentData struct {
	URL   string `json:"url"`
	Label string `json:"label"`
}

type ImageData struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

// BlockDraft is the wire shape of one block as submitted by the editor:
// a ServiceContentBlock minus id and owning service.
type BlockDraft struct {
	BlockType string          `json:"block_type"`
	Title     string          `json:"title"`
	Content   string          `json:"content"`
	Data      json.RawMessage `json:"data"`
	Order     int             `json:"order"`
	IsActive  *bool           `json:"is_active"`
}

// Normalize applies the construction defaults: unknown type becomes text,
// non-object data becomes {}, a negative order becomes 0, and a missing
// is_active becomes true.
func (d BlockDraft) Normalize() BlockDraft {
	d.BlockType = string(NormalizeBlockType(d.BlockType))
	if !isJSONObject(d.Data) {
		d.Data = json.RawMessage(`{}`)
	}
	if d.Order < 0 {
		d.Order = 0
	}
	if d.IsActive == nil {
		active := true
		d.IsActive = &active
	}
	return d
}

// Block builds a persistable (or transient, when serviceID is zero) block
// from a normalized draft.
func (d BlockDraft) Block(serviceID uint) ServiceContentBlock {
	n := d.Normalize()
	return ServiceContentBlock{
		ServiceID: serviceID,
		BlockType: n.BlockType,
		Title:     n.Title,
		Content:   n.Content,
		Data:      datatypes.JSON(n.Data),
		SortOrder: n.Order,
		IsActive:  *n.IsActive,
	}
}

func isJSONObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{' && json.Valid(trimmed)
}
