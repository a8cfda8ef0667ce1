package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/Anderson413366/anderson-cleaning-sub001/models"
	"github.com/Anderson413366/anderson-cleaning-sub001/ratelimit"
	"github.com/Anderson413366/anderson-cleaning-sub001/repositories"
	"github.com/Anderson413366/anderson-cleaning-sub001/services"
)

// FormsController handles the public form submission endpoints
type FormsController struct {
	engine *services.PipelineEngine

	quickQuote *services.Pipeline
	contact    *services.Pipeline
	quote      *services.Pipeline
	feedback   *services.Pipeline
	newsletter *services.Pipeline
}

// NewFormsController wires one pipeline per form endpoint
func NewFormsController(srvs *services.Services, repos *repositories.Repositories) *FormsController {
	c := &FormsController{engine: srvs.Engine}

	c.quickQuote = &services.Pipeline{
		Name:           "quick-quote",
		RateLimit:      ratelimit.Config{Limit: 5, Window: 5 * time.Minute},
		SuccessMessage: "Thank you! A specialist will reach out within 24 hours (Mon–Fri, 9 AM – 5 PM EST).",
		NewForm:        func() models.Form { return &models.QuickQuoteForm{} },
		Store: func(ctx context.Context, form models.Form, meta models.RequestMeta) error {
			f := form.(*models.QuickQuoteForm)
			return repos.Contacts.Insert(ctx, &models.ContactSubmission{
				Name:       f.Name,
				Email:      f.Email,
				Phone:      f.Phone,
				Company:    f.Company,
				Message:    f.Message(),
				SourcePage: meta.SourcePage,
				IPAddress:  meta.IPAddress,
				UserAgent:  meta.UserAgent,
			})
		},
		Notify: func(ctx context.Context, form models.Form, meta models.RequestMeta) error {
			notification, err := services.RenderQuickQuoteEmail(form.(*models.QuickQuoteForm), meta)
			if err != nil {
				return err
			}
			return srvs.Notifier.Send(ctx, notification)
		},
	}

	c.contact = &services.Pipeline{
		Name:           "contact",
		RateLimit:      ratelimit.Config{Limit: 5, Window: 5 * time.Minute},
		SuccessMessage: "Thank you for contacting us. We'll respond to your message within 1 business day.",
		NewForm:        func() models.Form { return &models.ContactForm{} },
		Store: func(ctx context.Context, form models.Form, meta models.RequestMeta) error {
			f := form.(*models.ContactForm)
			return repos.Contacts.Insert(ctx, &models.ContactSubmission{
				Name:       f.Name,
				Email:      f.Email,
				Phone:      f.Phone,
				Company:    f.Company,
				Message:    f.Message,
				SourcePage: meta.SourcePage,
				IPAddress:  meta.IPAddress,
				UserAgent:  meta.UserAgent,
			})
		},
		Notify: func(ctx context.Context, form models.Form, meta models.RequestMeta) error {
			notification, err := services.RenderContactEmail(form.(*models.ContactForm), meta)
			if err != nil {
				return err
			}
			return srvs.Notifier.Send(ctx, notification)
		},
	}

	c.quote = &services.Pipeline{
		Name:           "quote",
		RateLimit:      ratelimit.Config{Limit: 5, Window: 5 * time.Minute},
		SuccessMessage: "Thank you! Your quote request has been received. We'll be in touch within 1 business day.",
		NewForm:        func() models.Form { return &models.QuoteForm{} },
		Store: func(ctx context.Context, form models.Form, meta models.RequestMeta) error {
			f := form.(*models.QuoteForm)
			return repos.Quotes.Insert(ctx, &models.QuoteRequest{
				FullName:          f.FullName,
				Company:           f.Company,
				Email:             f.Email,
				Phone:             f.Phone,
				Address:           f.Address,
				City:              f.City,
				ZipCode:           f.ZipCode,
				FacilityType:      f.FacilityType,
				SquareFootage:     f.SquareFootage,
				CleaningFrequency: f.CleaningFrequency,
				SpecialRequests:   f.SpecialRequests,
				SourcePage:        meta.SourcePage,
				IPAddress:         meta.IPAddress,
				UserAgent:         meta.UserAgent,
			})
		},
		Notify: func(ctx context.Context, form models.Form, meta models.RequestMeta) error {
			notification, err := services.RenderQuoteEmail(form.(*models.QuoteForm), meta)
			if err != nil {
				return err
			}
			return srvs.Notifier.Send(ctx, notification)
		},
	}

	c.feedback = &services.Pipeline{
		Name:           "feedback",
		RateLimit:      ratelimit.Config{Limit: 10, Window: 10 * time.Minute},
		SuccessMessage: "Thank you for your feedback!",
		NewForm:        func() models.Form { return &models.FeedbackForm{} },
		Store: func(ctx context.Context, form models.Form, meta models.RequestMeta) error {
			f := form.(*models.FeedbackForm)
			userAgent := f.UserAgent
			if userAgent == "" {
				userAgent = meta.UserAgent
			}
			return repos.Feedback.Insert(ctx, &models.PageFeedback{
				PageID:      f.PageID,
				Vote:        f.Vote,
				Feedback:    f.Feedback,
				SubmittedAt: f.Timestamp,
				UserAgent:   userAgent,
			})
		},
		// Feedback votes are low-value; nobody gets paged about them.
		Notify: func(context.Context, models.Form, models.RequestMeta) error { return nil },
	}

	c.newsletter = &services.Pipeline{
		Name:           "newsletter",
		RateLimit:      ratelimit.Config{Limit: 10, Window: 10 * time.Minute},
		SuccessMessage: "You're subscribed! Watch your inbox for cleaning tips and offers.",
		NewForm:        func() models.Form { return &models.NewsletterForm{} },
		Store: func(ctx context.Context, form models.Form, meta models.RequestMeta) error {
			f := form.(*models.NewsletterForm)
			return repos.Newsletter.Insert(ctx, &models.NewsletterSubscription{
				Email:     f.Email,
				Source:    f.Source,
				IPAddress: meta.IPAddress,
			})
		},
		Notify: func(context.Context, models.Form, models.RequestMeta) error { return nil },
	}

	return c
}

// QuickQuote handles POST /api/quick-quote
func (c *FormsController) QuickQuote(w http.ResponseWriter, r *http.Request) {
	c.run(w, r, c.quickQuote, "/quick-quote")
}

// Contact handles POST /api/contact
func (c *FormsController) Contact(w http.ResponseWriter, r *http.Request) {
	c.run(w, r, c.contact, "/contact")
}

// Quote handles POST /api/quote
func (c *FormsController) Quote(w http.ResponseWriter, r *http.Request) {
	c.run(w, r, c.quote, "/quote")
}

// Feedback handles POST /api/feedback
func (c *FormsController) Feedback(w http.ResponseWriter, r *http.Request) {
	c.run(w, r, c.feedback, "/feedback")
}

// Newsletter handles POST /api/newsletter
func (c *FormsController) Newsletter(w http.ResponseWriter, r *http.Request) {
	c.run(w, r, c.newsletter, "/newsletter")
}

// run executes a pipeline for one request and writes the outcome
func (c *FormsController) run(w http.ResponseWriter, r *http.Request, p *services.Pipeline, fallbackSource string) {
	identity := ratelimit.ClientIdentifier(r)
	meta := requestMeta(r, fallbackSource)

	outcome := c.engine.Run(r.Context(), p, identity, r.Body, meta)

	setRateLimitHeaders(w, p.RateLimit, outcome.RateLimit)
	writeJSON(w, outcome.Status, outcome.Response)
}
