package reddit

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const (
	KindComment = "t1"
	KindPost    = "t3"
	KindMessage = "t4"
	KindMore    = "more"

	// continueThreadID marks a "continue this thread" stub, emitted below the reply depth cap.
	// It lists no children; the subtree is only reachable through the parent's permalink.
	continueThreadID = "_"
)

// Post is a link submission.
type Post struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Subreddit   string  `json:"subreddit"`
	CreatedUTC  float64 `json:"created_utc"`
	NumComments int     `json:"num_comments"`
}

// Comment is a node of a post's comment tree.
type Comment struct {
	ID         string
	Name       string
	Author     string
	ParentID   string
	Body       string
	CreatedUTC float64
	Replies    []*Comment
}

// PrivateMessage is an inbox item. Comment replies also show up in the inbox with a t1_ name.
type PrivateMessage struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Author     string  `json:"author"`
	Dest       string  `json:"dest"`
	Subject    string  `json:"subject"`
	Body       string  `json:"body"`
	ParentID   string  `json:"parent_id"`
	CreatedUTC float64 `json:"created_utc"`
	New        bool    `json:"new"`
	WasComment bool    `json:"was_comment"`
}

type thing struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

type listing struct {
	Kind string `json:"kind"`
	Data struct {
		After    string  `json:"after"`
		Children []thing `json:"children"`
	} `json:"data"`
}

type commentData struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Author     string          `json:"author"`
	ParentID   string          `json:"parent_id"`
	Body       string          `json:"body"`
	CreatedUTC float64         `json:"created_utc"`
	Replies    json.RawMessage `json:"replies"`
}

type moreData struct {
	ID       string   `json:"id"`
	ParentID string   `json:"parent_id"`
	Count    int      `json:"count"`
	Children []string `json:"children"`
}

// jsonEnvelope is the api_type=json response shape of POST endpoints.
type jsonEnvelope struct {
	JSON struct {
		Errors [][]string `json:"errors"`
		Data   struct {
			Things []thing `json:"things"`
		} `json:"data"`
	} `json:"json"`
}

// treeBuilder assembles comment trees and remembers unexpanded "load more" and
// "continue this thread" stubs.
type treeBuilder struct {
	byName    map[string]*Comment
	more      []moreData
	continued []string // parent fullnames whose deeper replies still need fetching
}

func newTreeBuilder() *treeBuilder {
	return &treeBuilder{byName: make(map[string]*Comment)}
}

// parseChildren decodes a list of t1/more things, recursing into embedded reply listings.
func (b *treeBuilder) parseChildren(children []thing) ([]*Comment, error) {
	var comments []*Comment
	for _, child := range children {
		switch child.Kind {
		case KindComment:
			c, err := b.parseComment(child.Data)
			if err != nil {
				return nil, err
			}
			comments = append(comments, c)
		case KindMore:
			var m moreData
			if err := json.Unmarshal(child.Data, &m); err != nil {
				return nil, fmt.Errorf("decode more stub: %w", err)
			}
			switch {
			case len(m.Children) > 0:
				b.more = append(b.more, m)
			case m.ID == continueThreadID && m.ParentID != "":
				b.continued = append(b.continued, m.ParentID)
			}
		}
	}
	return comments, nil
}

func (b *treeBuilder) parseComment(raw json.RawMessage) (*Comment, error) {
	var d commentData
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("decode comment: %w", err)
	}
	c := &Comment{
		ID:         d.ID,
		Name:       d.Name,
		Author:     d.Author,
		ParentID:   d.ParentID,
		Body:       d.Body,
		CreatedUTC: d.CreatedUTC,
	}
	b.byName[c.Name] = c

	// replies is "" when empty, otherwise a Listing
	if trimmed := bytes.TrimSpace(d.Replies); len(trimmed) > 0 && trimmed[0] == '{' {
		var l listing
		if err := json.Unmarshal(trimmed, &l); err != nil {
			return nil, fmt.Errorf("decode replies of %s: %w", c.Name, err)
		}
		replies, err := b.parseChildren(l.Data.Children)
		if err != nil {
			return nil, err
		}
		c.Replies = replies
	}
	return c, nil
}

// attach places expanded comments under their parents. Comments whose parent is the post are returned as roots.
func (b *treeBuilder) attach(comments []*Comment) []*Comment {
	var roots []*Comment
	for _, c := range comments {
		if parent, ok := b.byName[c.ParentID]; ok {
			parent.Replies = append(parent.Replies, c)
			continue
		}
		roots = append(roots, c)
	}
	return roots
}

func (b *treeBuilder) takeMore() []moreData {
	more := b.more
	b.more = nil
	return more
}

func (b *treeBuilder) takeContinued() []string {
	continued := b.continued
	b.continued = nil
	return continued
}

// graft merges a subtree fetched from a parent's permalink. The permalink repeats the parent itself
// as the root, so its replies move onto the node already in the tree; anything else attaches by parent id.
func (b *treeBuilder) graft(parent *Comment, fetched []*Comment) []*Comment {
	var roots []*Comment
	for _, c := range fetched {
		if c.Name == parent.Name {
			parent.Replies = append(parent.Replies, c.Replies...)
			continue
		}
		roots = append(roots, b.attach([]*Comment{c})...)
	}
	b.byName[parent.Name] = parent
	return roots
}
