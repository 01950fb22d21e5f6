package page

import (
	"fmt"

	"github.com/iburimskiy/page-motion/internal/config"
	"github.com/iburimskiy/page-motion/internal/content"
	"github.com/iburimskiy/page-motion/internal/counter"
	"github.com/iburimskiy/page-motion/internal/reveal"
)

// Kind is what an element draws as.
type Kind int

const (
	Heading Kind = iota
	StatCard
	SkillCard
	SectionCard
	Group // invisible container, used to cascade into nested counters
)

// Element is a laid-out, reveal-animated block below the hero.
type Element struct {
	Kind    Kind
	Title   string
	Body    string
	Index   int
	Rect    reveal.Rect
	Target  *reveal.Target
	Counter *counter.Counter
	Bar     *reveal.Bar
}

const (
	headingHeight  = 24
	gridGap        = 16
	skillCardWidth = 240
	skillCardH     = 72
)

// build creates one element per piece of content. Rects are filled in by
// layout.
func build(doc *content.Document) []*Element {
	var els []*Element
	fadeIn := config.RevealDuration

	heading := func(id, title string) {
		els = append(els, &Element{Kind: Heading, Title: title, Target: reveal.NewTarget(id, fadeIn)})
	}

	if len(doc.Stats) > 0 {
		heading("heading-stats", "By the numbers")
		group := &Element{Kind: Group, Target: reveal.NewTarget("stats", fadeIn)}
		for i, st := range doc.Stats {
			c := counter.New(st.Label, st.Count, st.Suffix, config.CounterDuration)
			t := reveal.NewTarget(fmt.Sprintf("stat-%d", i), fadeIn)
			t.Counters = []*counter.Counter{c}
			group.Target.Counters = append(group.Target.Counters, c)
			els = append(els, &Element{Kind: StatCard, Title: st.Label, Index: i, Target: t, Counter: c})
		}
		els = append(els, group)
	}

	if len(doc.Skills) > 0 {
		heading("heading-skills", "Skills")
		for i, sk := range doc.Skills {
			b := reveal.NewBar(sk.Name, sk.Width, config.BarDuration)
			t := reveal.NewTarget(fmt.Sprintf("skill-%d", i), fadeIn)
			t.Bars = []*reveal.Bar{b}
			els = append(els, &Element{Kind: SkillCard, Title: sk.Name, Index: i, Target: t, Bar: b})
		}
	}

	for i, sec := range doc.Sections {
		t := reveal.NewTarget(fmt.Sprintf("section-%d", i), fadeIn)
		els = append(els, &Element{Kind: SectionCard, Title: sec.Title, Body: sec.Body, Index: i, Target: t})
	}
	return els
}

// layout positions els for a page of the given width and returns the total
// page height.
func layout(els []*Element, width int) float64 {
	inner := max(1, float64(width-2*config.PagePadding))
	left := float64(config.PagePadding)
	y := float64(config.HeroHeight + config.SectionGap)

	for i := 0; i < len(els); {
		el := els[i]
		switch el.Kind {
		case Heading:
			el.Rect = reveal.Rect{X: left, Y: y, W: inner, H: headingHeight}
			y += headingHeight + gridGap
			i++

		case StatCard, SkillCard:
			j := i
			for j < len(els) && els[j].Kind == el.Kind {
				j++
			}
			cw, ch := float64(config.StatCardWidth), float64(config.CardHeight)
			if el.Kind == SkillCard {
				cw, ch = skillCardWidth, skillCardH
			}
			y = grid(els[i:j], left, y, inner, cw, ch) + config.SectionGap
			i = j

		case Group:
			var r reveal.Rect
			for _, other := range els {
				if other.Kind == StatCard {
					r = union(r, other.Rect)
				}
			}
			el.Rect = r
			i++

		case SectionCard:
			el.Rect = reveal.Rect{X: left, Y: y, W: inner, H: config.CardHeight}
			y += config.CardHeight + gridGap
			i++

		default:
			i++
		}
	}
	return y + config.SectionGap
}

// grid lays cells out left to right in as many columns of at least minW as
// fit, and returns the bottom of the last row.
func grid(cells []*Element, left, top, inner, minW, h float64) float64 {
	cols := max(1, int((inner+gridGap)/(minW+gridGap)))
	w := (inner - float64(cols-1)*gridGap) / float64(cols)
	bottom := top
	for k, el := range cells {
		row, col := k/cols, k%cols
		el.Rect = reveal.Rect{
			X: left + float64(col)*(w+gridGap),
			Y: top + float64(row)*(h+gridGap),
			W: w,
			H: h,
		}
		bottom = el.Rect.Y + h
	}
	return bottom
}

func union(a, b reveal.Rect) reveal.Rect {
	if a.Area() == 0 {
		return b
	}
	if b.Area() == 0 {
		return a
	}
	x1, y1 := min(a.X, b.X), min(a.Y, b.Y)
	x2, y2 := max(a.X+a.W, b.X+b.W), max(a.Y+a.H, b.Y+b.H)
	return reveal.Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}
