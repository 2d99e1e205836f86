package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// ComposeMessage sends a private message.
func (c *Client) ComposeMessage(ctx context.Context, to, subject, text string) error {
	form := url.Values{}
	form.Set("api_type", "json")
	form.Set("to", to)
	form.Set("subject", subject)
	form.Set("text", text)

	var env jsonEnvelope
	if err := c.post(ctx, "/api/compose", form, &env); err != nil {
		return err
	}
	return envelopeError(env.JSON.Errors)
}

// MarkRead marks one inbox item read. fullname is e.g. t4_abc123.
func (c *Client) MarkRead(ctx context.Context, fullname string) error {
	form := url.Values{}
	form.Set("id", fullname)
	return c.post(ctx, "/api/read_message", form, nil)
}

// Reply answers a private message and returns the created reply.
func (c *Client) Reply(ctx context.Context, messageID, text string) (PrivateMessage, error) {
	fullname := messageID
	if !strings.HasPrefix(fullname, KindMessage+"_") {
		fullname = KindMessage + "_" + fullname
	}

	form := url.Values{}
	form.Set("api_type", "json")
	form.Set("thing_id", fullname)
	form.Set("text", text)

	var env jsonEnvelope
	if err := c.post(ctx, "/api/comment", form, &env); err != nil {
		return PrivateMessage{}, err
	}
	if err := envelopeError(env.JSON.Errors); err != nil {
		return PrivateMessage{}, err
	}
	if len(env.JSON.Data.Things) == 0 {
		return PrivateMessage{}, fmt.Errorf("reply to %s: no message returned", fullname)
	}

	var reply PrivateMessage
	if err := json.Unmarshal(env.JSON.Data.Things[0].Data, &reply); err != nil {
		return PrivateMessage{}, fmt.Errorf("decode reply: %w", err)
	}
	return reply, nil
}
