// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lightweight DDD Contributors

//go:build integration

package catalog_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention

	"github.com/ivanhoe-k/lightweight-ddd/internal/catalog"
	"github.com/ivanhoe-k/lightweight-ddd/pkg/virtual"
)

var _ = Describe("WidgetRepository", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
		cleanupWidgets(ctx, env.pool)
	})

	Describe("Create", func() {
		It("persists all widget fields", func() {
			note := "limited run"
			w := createTestWidget("Gadget", &note, 1500)

			Expect(env.Widgets.Create(ctx, w)).To(Succeed())

			got, err := env.Widgets.Get(ctx, w.ID(), catalog.ProjectionAll)
			Expect(err).NotTo(HaveOccurred())

			name, err := got.Name()
			Expect(err).NotTo(HaveOccurred())
			Expect(name).To(Equal("Gadget"))

			gotNote, err := got.Note()
			Expect(err).NotTo(HaveOccurred())
			Expect(gotNote).NotTo(BeNil())
			Expect(*gotNote).To(Equal("limited run"))

			price, err := got.Price()
			Expect(err).NotTo(HaveOccurred())
			Expect(price).To(Equal(int64(1500)))
		})

		It("stores a nil note as NULL", func() {
			w := createTestWidget("Bare", nil, 100)

			Expect(env.Widgets.Create(ctx, w)).To(Succeed())

			got, err := env.Widgets.Get(ctx, w.ID(), catalog.FieldNote)
			Expect(err).NotTo(HaveOccurred())

			note, err := got.Note()
			Expect(err).NotTo(HaveOccurred())
			Expect(note).To(BeNil())
		})

		It("rejects a duplicate ID", func() {
			w := createTestWidget("First", nil, 100)
			Expect(env.Widgets.Create(ctx, w)).To(Succeed())

			dup := createTestWidget("Second", nil, 200)
			again, err := catalog.NewWidget(w.ID(), dup.Args())
			Expect(err).NotTo(HaveOccurred())

			Expect(env.Widgets.Create(ctx, again)).To(MatchError(catalog.ErrDuplicate))
		})
	})

	Describe("Get", func() {
		It("hydrates only the projected fields", func() {
			w := createTestWidget("Partial", nil, 900)
			Expect(env.Widgets.Create(ctx, w)).To(Succeed())

			got, err := env.Widgets.Get(ctx, w.ID(), catalog.FieldPrice)
			Expect(err).NotTo(HaveOccurred())

			price, err := got.Price()
			Expect(err).NotTo(HaveOccurred())
			Expect(price).To(Equal(int64(900)))

			_, err = got.Name()
			Expect(err).To(MatchError(virtual.ErrUnresolvedAccess))
		})

		It("returns not found for an unknown ID", func() {
			w := createTestWidget("Ghost", nil, 1)
			_, err := env.Widgets.Get(ctx, w.ID(), catalog.ProjectionAll)
			Expect(err).To(MatchError(catalog.ErrNotFound))
		})
	})

	Describe("List", func() {
		It("returns all widgets ordered by ID with projected fields", func() {
			a := createTestWidget("Alpha", nil, 100)
			b := createTestWidget("Beta", nil, 200)
			Expect(env.Widgets.Create(ctx, a)).To(Succeed())
			Expect(env.Widgets.Create(ctx, b)).To(Succeed())

			ws, err := env.Widgets.List(ctx, catalog.FieldName)
			Expect(err).NotTo(HaveOccurred())
			Expect(ws).To(HaveLen(2))

			for _, w := range ws {
				_, err := w.Name()
				Expect(err).NotTo(HaveOccurred())
				_, err = w.Price()
				Expect(err).To(MatchError(virtual.ErrUnresolvedAccess))
			}
		})

		It("lists nothing from an empty table", func() {
			ws, err := env.Widgets.List(ctx, catalog.ProjectionAll)
			Expect(err).NotTo(HaveOccurred())
			Expect(ws).To(BeEmpty())
		})
	})

	Describe("Save", func() {
		It("writes back only changed fields", func() {
			w := createTestWidget("Original", nil, 1000)
			Expect(env.Widgets.Create(ctx, w)).To(Succeed())

			loaded, err := env.Widgets.Get(ctx, w.ID(), catalog.FieldPrice)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.SetPrice(750)).To(Succeed())
			Expect(env.Widgets.Save(ctx, loaded)).To(Succeed())

			got, err := env.Widgets.Get(ctx, w.ID(), catalog.ProjectionAll)
			Expect(err).NotTo(HaveOccurred())

			price, err := got.Price()
			Expect(err).NotTo(HaveOccurred())
			Expect(price).To(Equal(int64(750)))

			name, err := got.Name()
			Expect(err).NotTo(HaveOccurred())
			Expect(name).To(Equal("Original"), "unprojected fields stay untouched")
		})

		It("fails when nothing changed", func() {
			w := createTestWidget("Static", nil, 100)
			Expect(env.Widgets.Create(ctx, w)).To(Succeed())

			loaded, err := env.Widgets.Get(ctx, w.ID(), catalog.ProjectionAll)
			Expect(err).NotTo(HaveOccurred())
			Expect(env.Widgets.Save(ctx, loaded)).To(MatchError(catalog.ErrNoChanges))
		})

		It("reports not found for a deleted widget", func() {
			w := createTestWidget("Doomed", nil, 100)
			Expect(env.Widgets.Create(ctx, w)).To(Succeed())

			loaded, err := env.Widgets.Get(ctx, w.ID(), catalog.FieldPrice)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.SetPrice(50)).To(Succeed())

			cleanupWidgets(ctx, env.pool)
			Expect(env.Widgets.Save(ctx, loaded)).To(MatchError(catalog.ErrNotFound))
		})
	})
})
