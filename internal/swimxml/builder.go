// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package swimxml

import (
	"math/rand/v2"
	"time"

	"github.com/beevik/etree"
	"github.com/specialistvlad/swimgen/internal/model"
)

// DefaultSeed seeds the random source when no seed or source is supplied.
const DefaultSeed int64 = 1

// xmlDeclaration renders as `<?xml version="1.0" ?>`.
const xmlDeclaration = `version="1.0" `

// Element and attribute names understood by the import consumer.
const (
	rootTag           = "data"
	indicatorTag      = "indicator"
	categoryTag       = "indicatorcategory"
	siteTag           = "site"
	accessGroupTag    = "accessgroup"
	operationsDataTag = "operationsdata"
	mapTag            = "map"
	userTag           = "user"
	categoryChildTag  = "category"
	dataTag           = "data"
)

// Builder accumulates fixture records into an in-memory XML tree.
type Builder struct {
	doc  *etree.Document
	root *etree.Element
	rng  *rand.Rand
	now  func() time.Time
}

// Option configures a Builder.
type Option func(*Builder)

// WithRand makes the builder draw values from r.
func WithRand(r *rand.Rand) Option {
	return func(b *Builder) {
		if r != nil {
			b.rng = r
		}
	}
}

// WithSeed makes the builder draw values from a new source seeded with seed.
func WithSeed(seed int64) Option {
	return func(b *Builder) {
		b.rng = NewRand(seed)
	}
}

// WithClock replaces the wall clock used by dynamic series.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		if now != nil {
			b.now = now
		}
	}
}

// NewRand returns the deterministic random source used for a given seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
}

// New creates a Builder holding an empty document.
func New(opts ...Option) *Builder {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", xmlDeclaration)
	b := &Builder{
		doc:  doc,
		root: doc.CreateElement(rootTag),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.rng == nil {
		b.rng = NewRand(DefaultSeed)
	}
	return b
}

// Len returns the number of elements appended to the root so far.
func (b *Builder) Len() int {
	return len(b.root.ChildElements())
}

// AddIndicator appends an indicator element.
func (b *Builder) AddIndicator(name, typ, class string) {
	el := b.root.CreateElement(indicatorTag)
	el.CreateAttr("name", name)
	el.CreateAttr("type", typ)
	el.CreateAttr("class", class)
}

// AddIndicatorCategory appends an indicatorcategory element with one map
// child per indicator name.
func (b *Builder) AddIndicatorCategory(name, class string, indicators []string) {
	el := b.root.CreateElement(categoryTag)
	el.CreateAttr("name", name)
	el.CreateAttr("class", class)
	for _, indicator := range indicators {
		el.CreateElement(mapTag).CreateAttr("indicator", indicator)
	}
}

// AddSite appends a site element. Parent, StartDate and EndDate are written
// only when non-empty.
func (b *Builder) AddSite(site model.Site) {
	el := b.root.CreateElement(siteTag)
	el.CreateAttr("name", site.Name)
	el.CreateAttr("type", site.Type)
	setOptionalAttr(el, "parent", site.Parent)
	setOptionalAttr(el, "start_date", site.StartDate)
	setOptionalAttr(el, "end_date", site.EndDate)
	for _, category := range site.Categories {
		el.CreateElement(mapTag).CreateAttr("category", category)
	}
}

// AddAccessGroup appends an accessgroup element: one user child per user,
// then one site child per grant holding one category child per category.
func (b *Builder) AddAccessGroup(group model.AccessGroup) {
	el := b.root.CreateElement(accessGroupTag)
	el.CreateAttr("name", group.Name)
	for _, user := range group.Users {
		el.CreateElement(userTag).CreateAttr("name", user)
	}
	for _, grant := range group.Sites {
		siteEl := el.CreateElement(siteTag)
		siteEl.CreateAttr("name", grant.Site)
		for _, category := range grant.Categories {
			siteEl.CreateElement(categoryChildTag).CreateAttr("name", category)
		}
	}
}

func setOptionalAttr(el *etree.Element, key, value string) {
	if value == "" {
		return
	}
	el.CreateAttr(key, value)
}
