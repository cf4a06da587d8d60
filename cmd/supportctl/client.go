package main

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/xiaot623/supportbot/internal/domain"
)

// Client talks to a running support chat server.
type Client struct {
	http      *resty.Client
	sessionID string
	userID    string
}

type errorBody struct {
	Error string `json:"error"`
}

// NewClient creates a client for the server at addr.
func NewClient(addr, sessionID, userID string) *Client {
	return &Client{
		http:      resty.New().SetBaseURL(addr).SetTimeout(60 * time.Second),
		sessionID: sessionID,
		userID:    userID,
	}
}

// Send posts one message for the client's session.
func (c *Client) Send(message string) (*domain.ChatResponse, error) {
	var out domain.ChatResponse
	var failure errorBody
	resp, err := c.http.R().
		SetBody(domain.ChatRequest{SessionID: c.sessionID, Message: message, UserID: c.userID}).
		SetResult(&out).
		SetError(&failure).
		Post("/chat")
	if err := checkResponse(resp, err, &failure); err != nil {
		return nil, fmt.Errorf("chat: %w", err)
	}
	return &out, nil
}

// History fetches the client's session history.
func (c *Client) History() (*domain.SessionHistory, error) {
	var out domain.SessionHistory
	var failure errorBody
	resp, err := c.http.R().
		SetPathParam("session_id", c.sessionID).
		SetResult(&out).
		SetError(&failure).
		Get("/sessions/{session_id}")
	if err := checkResponse(resp, err, &failure); err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	return &out, nil
}

// Sessions lists session ids known to the server.
func (c *Client) Sessions() (*domain.SessionList, error) {
	var out domain.SessionList
	var failure errorBody
	resp, err := c.http.R().
		SetResult(&out).
		SetError(&failure).
		Get("/sessions")
	if err := checkResponse(resp, err, &failure); err != nil {
		return nil, fmt.Errorf("sessions: %w", err)
	}
	return &out, nil
}

// FAQs lists the server's FAQ set.
func (c *Client) FAQs() ([]domain.FAQItem, error) {
	var out []domain.FAQItem
	var failure errorBody
	resp, err := c.http.R().
		SetResult(&out).
		SetError(&failure).
		Get("/faqs")
	if err := checkResponse(resp, err, &failure); err != nil {
		return nil, fmt.Errorf("faqs: %w", err)
	}
	return out, nil
}

func checkResponse(resp *resty.Response, err error, failure *errorBody) error {
	if err != nil {
		return err
	}
	if resp.IsError() {
		if failure.Error != "" {
			return fmt.Errorf("server returned %d: %s", resp.StatusCode(), failure.Error)
		}
		return fmt.Errorf("server returned %d", resp.StatusCode())
	}
	return nil
}
