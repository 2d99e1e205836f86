package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	pageSize          = 100
	moreChildrenChunk = 100
)

// SearchParams narrows a subreddit search.
type SearchParams struct {
	Query  string
	Syntax string
	Sort   string
	Limit  int
}

// SearchSubreddit pages through /r/{subreddit}/search until Limit posts or the listing ends.
func (c *Client) SearchSubreddit(ctx context.Context, subreddit string, params SearchParams) ([]Post, error) {
	query := url.Values{}
	query.Set("q", params.Query)
	query.Set("restrict_sr", "true")
	query.Set("include_over_18", "on")
	if params.Syntax != "" {
		query.Set("syntax", params.Syntax)
	}
	if params.Sort != "" {
		query.Set("sort", params.Sort)
	}
	return c.pagePosts(ctx, "/r/"+url.PathEscape(subreddit)+"/search", query, params.Limit)
}

// TopPosts returns up to limit top posts of the subreddit for the given period (hour, day, week, month, year, all).
func (c *Client) TopPosts(ctx context.Context, subreddit, period string, limit int) ([]Post, error) {
	query := url.Values{}
	query.Set("t", period)
	return c.pagePosts(ctx, "/r/"+url.PathEscape(subreddit)+"/top", query, limit)
}

func (c *Client) pagePosts(ctx context.Context, path string, query url.Values, limit int) ([]Post, error) {
	var posts []Post
	after := ""
	for {
		page := pageSize
		if limit > 0 {
			page = min(pageSize, limit-len(posts))
		}
		query.Set("limit", strconv.Itoa(page))
		if after != "" {
			query.Set("after", after)
		} else {
			query.Del("after")
		}

		var l listing
		if err := c.get(ctx, path, query, &l); err != nil {
			return nil, err
		}

		for _, child := range l.Data.Children {
			if child.Kind != KindPost {
				continue
			}
			var p Post
			if err := json.Unmarshal(child.Data, &p); err != nil {
				return nil, fmt.Errorf("decode post: %w", err)
			}
			posts = append(posts, p)
		}

		after = l.Data.After
		if after == "" || len(l.Data.Children) == 0 || (limit > 0 && len(posts) >= limit) {
			return posts, nil
		}
	}
}

// Comments fetches the full comment tree of a post, expanding every "load more" and
// "continue this thread" stub.
func (c *Client) Comments(ctx context.Context, postID string) ([]*Comment, error) {
	postID = strings.TrimPrefix(postID, KindPost+"_")

	query := url.Values{}
	query.Set("limit", "500")
	query.Set("sort", "new")

	var listings []listing
	if err := c.get(ctx, "/comments/"+url.PathEscape(postID), query, &listings); err != nil {
		return nil, err
	}
	if len(listings) < 2 {
		return nil, fmt.Errorf("comments of %s: expected 2 listings, got %d", postID, len(listings))
	}

	builder := newTreeBuilder()
	roots, err := builder.parseChildren(listings[1].Data.Children)
	if err != nil {
		return nil, err
	}

	visited := make(map[string]bool)
	for {
		more := builder.takeMore()
		continued := builder.takeContinued()
		if len(more) == 0 && len(continued) == 0 {
			return roots, nil
		}

		var ids []string
		for _, m := range more {
			ids = append(ids, m.Children...)
		}
		for start := 0; start < len(ids); start += moreChildrenChunk {
			end := min(start+moreChildrenChunk, len(ids))
			expanded, err := c.moreChildren(ctx, builder, postID, ids[start:end])
			if err != nil {
				return nil, err
			}
			roots = append(roots, builder.attach(expanded)...)
		}

		for _, parentName := range continued {
			if visited[parentName] {
				continue
			}
			visited[parentName] = true

			grafted, err := c.continueThread(ctx, builder, postID, parentName)
			if err != nil {
				return nil, err
			}
			roots = append(roots, grafted...)
		}
	}
}

// continueThread fetches the replies hidden behind a "continue this thread" stub through the
// parent comment's permalink and grafts them under that parent.
func (c *Client) continueThread(ctx context.Context, builder *treeBuilder, postID, parentName string) ([]*Comment, error) {
	parent, ok := builder.byName[parentName]
	if !ok {
		return nil, nil
	}

	query := url.Values{}
	query.Set("limit", "500")
	query.Set("sort", "new")

	path := "/comments/" + url.PathEscape(postID) + "/_/" + url.PathEscape(strings.TrimPrefix(parentName, KindComment+"_"))
	var listings []listing
	if err := c.get(ctx, path, query, &listings); err != nil {
		return nil, err
	}
	if len(listings) < 2 {
		return nil, fmt.Errorf("thread %s of %s: expected 2 listings, got %d", parentName, postID, len(listings))
	}

	fetched, err := builder.parseChildren(listings[1].Data.Children)
	if err != nil {
		return nil, err
	}
	return builder.graft(parent, fetched), nil
}

func (c *Client) moreChildren(ctx context.Context, builder *treeBuilder, postID string, ids []string) ([]*Comment, error) {
	query := url.Values{}
	query.Set("api_type", "json")
	query.Set("link_id", KindPost+"_"+postID)
	query.Set("children", strings.Join(ids, ","))
	query.Set("limit_children", "false")

	var env jsonEnvelope
	if err := c.get(ctx, "/api/morechildren", query, &env); err != nil {
		return nil, err
	}
	if err := envelopeError(env.JSON.Errors); err != nil {
		return nil, err
	}
	return builder.parseChildren(env.JSON.Data.Things)
}

// Inbox returns up to limit inbox items, newest first.
func (c *Client) Inbox(ctx context.Context, limit int) ([]PrivateMessage, error) {
	var items []PrivateMessage
	query := url.Values{}
	after := ""
	for {
		page := min(pageSize, limit-len(items))
		if page <= 0 {
			return items, nil
		}
		query.Set("limit", strconv.Itoa(page))
		if after != "" {
			query.Set("after", after)
		}

		var l listing
		if err := c.get(ctx, "/message/inbox", query, &l); err != nil {
			return nil, err
		}

		for _, child := range l.Data.Children {
			var m PrivateMessage
			if err := json.Unmarshal(child.Data, &m); err != nil {
				return nil, fmt.Errorf("decode inbox item: %w", err)
			}
			items = append(items, m)
		}

		after = l.Data.After
		if after == "" || len(l.Data.Children) == 0 {
			return items, nil
		}
	}
}
