// Package ingest imports daily specials from campus dining menu pages.
// Each configured source is one page for one place; items are parsed out
// of the HTML, keyed by a stable source id, and inserted for today.
package ingest

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"foodcompass-engine/internal/domain"
	"foodcompass-engine/internal/store"

	"github.com/PuerkitoBio/goquery"
)

// Source is one menu page to import, configured by place name.
type Source struct {
	Name  string // source label, used in the dedupe key
	URL   string
	Place string // display name of the place the specials belong to
}

// Status is a snapshot of the importer's last run.
type Status struct {
	Running   bool      `json:"running"`
	LastRun   time.Time `json:"last_run"`
	LastAdded int       `json:"last_added"`
	LastError string    `json:"last_error,omitempty"`
}

type Importer struct {
	hc      *http.Client
	limiter *HostLimiter
	running atomic.Bool
	status  atomic.Value // Status
}

func New() *Importer {
	im := &Importer{
		hc:      &http.Client{Timeout: 20 * time.Second},
		limiter: NewHostLimiter(1, 2),
	}
	im.status.Store(Status{})
	return im
}

func (im *Importer) Status() Status {
	st := im.status.Load().(Status)
	st.Running = im.running.Load()
	return st
}

// RunOnce imports every source, best effort: one broken page doesn't stop
// the rest. Returns how many specials were newly added. Concurrent calls
// collapse to one run.
func (im *Importer) RunOnce(ctx context.Context, db *sql.DB, sources []Source, onAdded func()) (int, error) {
	if !im.running.CompareAndSwap(false, true) {
		return 0, fmt.Errorf("ingest already running")
	}
	defer im.running.Store(false)

	added := 0
	var firstErr error
	today := time.Now().UTC().Format("2006-01-02")

	for _, src := range sources {
		n, err := im.runSource(ctx, db, src, today)
		added += n
		if err != nil {
			log.Printf("[ingest] source=%s error: %v", src.Name, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		log.Printf("[ingest] source=%s added=%d", src.Name, n)
	}

	st := Status{LastRun: time.Now().UTC(), LastAdded: added}
	if firstErr != nil {
		st.LastError = firstErr.Error()
	}
	im.status.Store(st)

	if added > 0 && onAdded != nil {
		onAdded()
	}
	return added, nil
}

func (im *Importer) runSource(ctx context.Context, db *sql.DB, src Source, date string) (int, error) {
	placeID, err := store.GetPlaceIDByName(ctx, db, src.Place)
	if err != nil {
		return 0, err
	}
	if placeID == "" {
		return 0, fmt.Errorf("unknown place %q", src.Place)
	}

	if err := im.limiter.WaitURL(ctx, src.URL); err != nil {
		return 0, err
	}

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
	req.Header.Set("User-Agent", "FoodCompass/1.0 (+local)")

	res, err := im.hc.Do(req)
	if err != nil {
		return 0, fmt.Errorf("get menu page: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return 0, fmt.Errorf("menu page status %d", res.StatusCode)
	}

	items, err := parseMenu(res.Body)
	if err != nil {
		return 0, err
	}

	added := 0
	for _, it := range items {
		sourceID := fmt.Sprintf("menu:%s:%s:%s", src.Name, date, slug(it.title))
		desc := it.description
		sp := domain.Special{
			PlaceID: placeID,
			Title:   it.title,
			Price:   it.price,
			Date:    date,
			Tags:    it.tags,
		}
		if desc != "" {
			sp.Description = &desc
		}
		ok, err := store.InsertSpecialIgnore(ctx, db, sp, sourceID)
		if err != nil {
			return added, err
		}
		if ok {
			added++
		}
	}
	return added, nil
}

type menuItem struct {
	title       string
	description string
	price       float64
	tags        []string
}

// parseMenu pulls specials out of a menu page. The markup convention is
// .menu-item blocks with .item-name, .item-desc, .price, and .tag children.
func parseMenu(r io.Reader) ([]menuItem, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse menu html: %w", err)
	}

	var items []menuItem
	doc.Find(".menu-item").Each(func(_ int, s *goquery.Selection) {
		title := cleanText(s.Find(".item-name").First().Text())
		if title == "" {
			title = cleanText(s.Find("h3").First().Text())
		}
		if title == "" {
			return
		}

		price, ok := parsePrice(s.Find(".price").First().Text())
		if !ok {
			return
		}

		it := menuItem{
			title:       title,
			description: cleanText(s.Find(".item-desc").First().Text()),
			price:       price,
			tags:        []string{},
		}
		s.Find(".tag").Each(func(_ int, t *goquery.Selection) {
			if tag := strings.ToLower(cleanText(t.Text())); tag != "" {
				it.tags = append(it.tags, tag)
			}
		})
		items = append(items, it)
	})
	return items, nil
}

func parsePrice(s string) (float64, bool) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

func cleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.TrimSpace(strings.Join(strings.Fields(s), " "))
}

func slug(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}
	return strings.Trim(b.String(), "-")
}
