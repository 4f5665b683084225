package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"
)

const sendMessagePath = "/sendMessage"

type SendOutcome int

const (
	Delivered SendOutcome = iota
	Rejected
	TransportFailure
)

type SendResult struct {
	Outcome     SendOutcome
	Description string
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

type Client interface {
	SendMessage(chatID string, text string) SendResult
}

type cli struct {
	apiAddress string
	botToken   string
	httpClient *http.Client
}

func NewCli(apiAddress string, botToken string, timeout int) Client {
	client := &http.Client{
		Timeout: time.Duration(timeout * int(time.Second)),
	}
	return &cli{
		apiAddress: apiAddress,
		botToken:   botToken,
		httpClient: client,
	}
}

func (c *cli) SendMessage(chatID string, text string) SendResult {
	reqBody, err := json.Marshal(sendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	})
	if err != nil {
		return SendResult{Outcome: TransportFailure, Description: err.Error()}
	}

	baseURL := c.apiAddress + "/bot" + c.botToken + sendMessagePath
	res, err := c.httpClient.Post(baseURL, "application/json", bytes.NewReader(reqBody))
	if err != nil {
		return SendResult{Outcome: TransportFailure, Description: err.Error()}
	}
	defer res.Body.Close()

	body, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return SendResult{Outcome: TransportFailure, Description: err.Error()}
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return SendResult{Outcome: TransportFailure, Description: fmt.Sprintf("status %d: %s", res.StatusCode, body)}
	}

	var tgResp sendMessageResponse
	if err = json.Unmarshal(body, &tgResp); err != nil {
		return SendResult{Outcome: TransportFailure, Description: err.Error()}
	}

	if !tgResp.OK {
		description := tgResp.Description
		if description == "" {
			description = "Unknown error"
		}
		return SendResult{Outcome: Rejected, Description: description}
	}

	return SendResult{Outcome: Delivered}
}
