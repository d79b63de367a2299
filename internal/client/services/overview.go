package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/jobpilot/internal/client/client"
	"github.com/dmitrijs2005/jobpilot/internal/client/models"
	"golang.org/x/sync/errgroup"
)

// Overview is everything the dashboard shows for one user.
type Overview struct {
	User          *models.User
	Resumes       []models.Resume
	Applications  []models.JobApplication
	Notifications []models.Notification
}

// Stats are the dashboard counters.
type Stats struct {
	Resumes           int
	Applications      int
	Sent              int
	ResponsesReceived int
	Notifications     int
	Undelivered       int
}

func (o *Overview) Stats() Stats {
	s := Stats{
		Resumes:       len(o.Resumes),
		Applications:  len(o.Applications),
		Notifications: len(o.Notifications),
	}
	for _, a := range o.Applications {
		if a.Status == models.ApplicationStatusSent {
			s.Sent++
		}
		if a.ResponseReceived {
			s.ResponsesReceived++
		}
	}
	for _, n := range o.Notifications {
		if !n.IsSent {
			s.Undelivered++
		}
	}
	return s
}

// LoadOverview fetches the user, resumes, applications and notifications
// concurrently. The first failure cancels the remaining calls.
func LoadOverview(ctx context.Context, c client.Client, userID int64) (*Overview, error) {
	g, ctx := errgroup.WithContext(ctx)
	var ov Overview

	g.Go(func() error {
		u, err := c.GetUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("load user: %w", err)
		}
		ov.User = u
		return nil
	})
	g.Go(func() error {
		r, err := c.ListUserResumes(ctx, userID)
		if err != nil {
			return fmt.Errorf("load resumes: %w", err)
		}
		ov.Resumes = r
		return nil
	})
	g.Go(func() error {
		a, err := c.ListApplications(ctx, userID)
		if err != nil {
			return fmt.Errorf("load applications: %w", err)
		}
		ov.Applications = a
		return nil
	})
	g.Go(func() error {
		n, err := c.ListNotifications(ctx, userID)
		if err != nil {
			return fmt.Errorf("load notifications: %w", err)
		}
		ov.Notifications = n
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &ov, nil
}
