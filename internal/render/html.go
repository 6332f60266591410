package render

import (
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/rcliao/chat-wrapped/internal/analysis"
	"github.com/rcliao/chat-wrapped/internal/model"
)

// A paperback page runs about 1500 characters.
const charsPerPage = 1500

var galleryTmpl = template.Must(template.New("gallery").Parse(galleryTemplate))

// WriteHTML writes the slide gallery for a stamped bundle.
func WriteHTML(w io.Writer, env Envelope) error {
	if err := galleryTmpl.Execute(w, buildGalleryData(env)); err != nil {
		return fmt.Errorf("render gallery: %w", err)
	}
	return nil
}

// galleryData is the flattened view the gallery template consumes. All
// numbers arrive pre-formatted so the template stays free of logic.
type galleryData struct {
	Year     int
	Messages string
	PerDay   string
	Sent     string
	Received string
	Chars    string
	Pages    string
	Contacts string

	TopName     string
	TopCount    string
	InnerCircle []rankRow

	HasGroups     bool
	GroupCount    string
	GroupTotal    string
	GroupSent     string
	GroupYoursPct int
	GroupClass    string
	GroupBadge    string
	GroupRows     []rankRow

	Personality string
	Tagline     string

	StarterPct   int
	StarterClass string
	StarterLabel string

	HasReply   bool
	ReplyMin   int
	ReplyClass string
	ReplyLabel string
	ReplyCard  string

	PeakHour string
	PeakDay  string

	LateName  string
	LateCount string

	BusiestDay   string
	BusiestCount string

	FanName  string
	FanRatio string

	SimpName  string
	SimpRatio string

	Heating []trendRow
	Ghosted []ghostRow

	HasEmoji bool
	EmojiPct int

	Top3 string
}

type rankRow struct {
	Rank  int
	Name  string
	Count string
}

type trendRow struct {
	Name string
	Gain string
}

type ghostRow struct {
	Name  string
	Early string
	Late  string
}

func buildGalleryData(env Envelope) galleryData {
	b := env.Metrics
	t := b.Totals

	d := galleryData{
		Year:        env.Year,
		Messages:    comma(t.Messages),
		PerDay:      comma(t.Messages / max(t.DaysObserved, 1)),
		Sent:        comma(t.Sent),
		Received:    comma(t.Received),
		Chars:       compactCount(t.SentChars),
		Pages:       comma(max(t.SentChars/charsPerPage, 1)),
		Contacts:    comma(t.Contacts),
		Personality: b.Personality.Label,
		Tagline:     b.Personality.Tagline,
		PeakHour:    hourLabel(t.PeakHour),
		PeakDay:     t.PeakWeekday.String(),
		ReplyCard:   "n/a",
	}

	top := b.Rankings[string(analysis.MetricTopContacts)]
	if len(top) > 0 {
		d.TopName = env.DisplayName(top[0].ContactKey)
		d.TopCount = comma(int(top[0].Value))
	}
	for i, e := range top {
		d.InnerCircle = append(d.InnerCircle, rankRow{
			Rank:  i + 1,
			Name:  env.DisplayName(e.ContactKey),
			Count: comma(int(e.Value)),
		})
	}

	if g := env.Groups; g != nil && g.Groups > 0 {
		d.HasGroups = true
		d.GroupCount = comma(g.Groups)
		d.GroupTotal = comma(g.Messages)
		d.GroupSent = comma(g.Sent)
		yours := float64(g.Sent) / float64(max(g.Messages, 1))
		d.GroupYoursPct = int(yours*100 + 0.5)
		d.GroupClass, d.GroupBadge = groupBadge(int((1-yours)*100 + 0.5))
		for i, e := range g.Top {
			d.GroupRows = append(d.GroupRows, rankRow{
				Rank:  i + 1,
				Name:  e.Name,
				Count: comma(e.Messages),
			})
		}
	}

	d.StarterPct = starterPercent(b.Skews)
	d.StarterClass, d.StarterLabel = "yellow", "THEY START"
	if d.StarterPct > 50 {
		d.StarterClass, d.StarterLabel = "green", "YOU START"
	}

	if b.Latency.Sent.Samples > 0 {
		d.HasReply = true
		d.ReplyMin = replyMinutes(b.Latency.Sent.MedianSeconds)
		d.ReplyClass, d.ReplyLabel = replyBadge(d.ReplyMin)
		d.ReplyCard = fmt.Sprintf("%dm", d.ReplyMin)
	}

	if late := b.Rankings[string(analysis.MetricLateNight)]; len(late) > 0 {
		d.LateName = env.DisplayName(late[0].ContactKey)
		d.LateCount = comma(int(late[0].Value))
	}

	if t.BusiestDay != "" {
		d.BusiestDay = formatDay(t.BusiestDay)
		d.BusiestCount = comma(t.BusiestCount)
	}

	if fan := b.Rankings[string(analysis.MetricBiggestFan)]; len(fan) > 0 {
		d.FanName = env.DisplayName(fan[0].ContactKey)
		d.FanRatio = fmt.Sprintf("%.1fx", fan[0].Value)
	}
	if simp := b.Rankings[string(analysis.MetricDownBad)]; len(simp) > 0 {
		d.SimpName = env.DisplayName(simp[0].ContactKey)
		d.SimpRatio = fmt.Sprintf("%.1fx", simp[0].Value)
	}

	for _, e := range b.Rankings[string(analysis.MetricHeatingUp)] {
		d.Heating = append(d.Heating, trendRow{
			Name: env.DisplayName(e.ContactKey),
			Gain: fmt.Sprintf("+%s", comma(int(e.Value))),
		})
	}
	for _, e := range b.Rankings[string(analysis.MetricGhosted)] {
		tr := b.Trends[e.ContactKey]
		d.Ghosted = append(d.Ghosted, ghostRow{
			Name:  env.DisplayName(e.ContactKey),
			Early: comma(tr.EarlyCount),
			Late:  comma(tr.LateCount),
		})
	}

	if t.SentWithEmoji > 0 {
		d.HasEmoji = true
		d.EmojiPct = int(float64(t.SentWithEmoji)/float64(max(t.Sent, 1))*100 + 0.5)
	}

	var top3 []string
	for i, e := range top {
		if i == 3 {
			break
		}
		top3 = append(top3, env.DisplayName(e.ContactKey))
	}
	d.Top3 = "No contacts"
	if len(top3) > 0 {
		d.Top3 = strings.Join(top3, ", ")
	}

	return d
}

// starterPercent is the share of conversation sessions opened by the
// owner, across all contacts. With no sessions it reads as an even 50.
func starterPercent(skews map[string]model.SkewResult) int {
	var sent, received int
	for _, s := range skews {
		sent += s.OpenersSent
		received += s.OpenersReceived
	}
	if sent+received == 0 {
		return 50
	}
	return int(float64(sent)/float64(sent+received)*100 + 0.5)
}

func replyMinutes(seconds float64) int {
	return int(seconds/60 + 0.5)
}

// groupBadge grades the owner's silent share of group traffic.
func groupBadge(lurkerPct int) (class, label string) {
	switch {
	case lurkerPct > 60:
		return "yellow", "LURKER"
	case lurkerPct < 40:
		return "green", "CONTRIBUTOR"
	default:
		return "cyan", "BALANCED"
	}
}

func replyBadge(minutes int) (class, label string) {
	switch {
	case minutes < 10:
		return "green", "INSTANT"
	case minutes < 60:
		return "yellow", "NORMAL"
	default:
		return "red", "SLOW"
	}
}

func hourLabel(hour int) string {
	switch {
	case hour == 0:
		return "12AM"
	case hour < 12:
		return fmt.Sprintf("%dAM", hour)
	case hour == 12:
		return "12PM"
	default:
		return fmt.Sprintf("%dPM", hour-12)
	}
}

// formatDay turns a day bucket key into a short human date.
func formatDay(day string) string {
	t, err := time.Parse(model.DayFormat, day)
	if err != nil {
		return day
	}
	return t.Format("Jan 02")
}

func compactCount(n int) string {
	if n >= 1000 {
		return comma(n/1000) + "K"
	}
	return comma(n)
}

func comma(n int) string {
	return humanize.Comma(int64(n))
}
