package main

import (
	"context"
)

// PingOutput represents the response for the ping endpoint
type PingOutput struct {
	Body struct {
		Message string `json:"message" example:"pong" doc:"Response message"`
		State   string `json:"state" example:"Idle" doc:"Current lookup state"`
	}
}

// handlePing is a health check endpoint that also reports the lookup state
func (app *App) handlePing(ctx context.Context, input *struct{}) (*PingOutput, error) {
	resp := &PingOutput{}
	resp.Body.Message = "pong"
	resp.Body.State = app.lookup.State().String()
	return resp, nil
}
