package processor

import "redditleads/internal/clients/reddit"

// usernameSet keeps first-seen order so persisted batches are deterministic.
type usernameSet struct {
	seen  map[string]struct{}
	order []string
}

func newUsernameSet() *usernameSet {
	return &usernameSet{seen: make(map[string]struct{})}
}

func (s *usernameSet) add(name string) {
	if name == "" || name == deletedAuthor {
		return
	}
	if _, ok := s.seen[name]; ok {
		return
	}
	s.seen[name] = struct{}{}
	s.order = append(s.order, name)
}

func (s *usernameSet) len() int {
	return len(s.order)
}

func (s *usernameSet) list() []string {
	return append([]string(nil), s.order...)
}

// walkAuthors visits every comment depth-first, parents before their replies.
func walkAuthors(roots []*reddit.Comment, visit func(author string)) {
	stack := make([]*reddit.Comment, 0, len(roots))
	for i := len(roots) - 1; i >= 0; i-- {
		stack = append(stack, roots[i])
	}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if c == nil {
			continue
		}
		visit(c.Author)
		for i := len(c.Replies) - 1; i >= 0; i-- {
			stack = append(stack, c.Replies[i])
		}
	}
}
