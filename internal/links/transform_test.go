// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package links

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortenFragmentLinks(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "keeps parent prefix",
			body: `<a href="../foo/#bar">x</a>`,
			want: `<a href="../foo#bar">x</a>`,
		},
		{
			name: "nested target",
			body: `<a href="../api/solids/#dagster.solid">x</a>`,
			want: `<a href="../api/solids#dagster.solid">x</a>`,
		},
		{
			name: "no fragment",
			body: `<a href="../foo/">x</a>`,
			want: `<a href="../foo/">x</a>`,
		},
		{
			name: "not parent relative",
			body: `<a href="foo/#bar">x</a>`,
			want: `<a href="foo/#bar">x</a>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShortenFragmentLinks(tt.body))
		})
	}
}

func TestTransformDocLink(t *testing.T) {
	tests := []struct {
		name    string
		relPath string
		body    string
		want    string
	}{
		{
			name:    "strips parent prefix",
			relPath: "sections/intro.json",
			body:    `<a href="../foo">Foo</a>`,
			want:    `<a href="foo">Foo</a>`,
		},
		{
			name:    "fragment link shortened and stripped",
			relPath: "sections/intro.json",
			body:    `<a href="../foo/#bar">Foo</a>`,
			want:    `<a href="foo#bar">Foo</a>`,
		},
		{
			name:    "dot target untouched",
			relPath: "sections/intro.json",
			body:    `<a href="../.hidden">x</a>`,
			want:    `<a href="../.hidden">x</a>`,
		},
		{
			name:    "double parent keeps second segment",
			relPath: "sections/intro.json",
			body:    `<a href="../../x">x</a>`,
			want:    `<a href="../../x">x</a>`,
		},
		{
			name:    "absolute links untouched",
			relPath: "index.json",
			body:    `<a href="https://example.com/#top">x</a>`,
			want:    `<a href="https://example.com/#top">x</a>`,
		},
		{
			name:    "multiple links",
			relPath: "sections/a.json",
			body:    `<a href="../a">A</a> <a href="../b/#c">B</a>`,
			want:    `<a href="a">A</a> <a href="b#c">B</a>`,
		},
		{
			name:    "library page collapses double parent",
			relPath: "sections/libraries/dagster-aws.json",
			body:    `<a href="../../x">x</a>`,
			want:    `<a href="../x">x</a>`,
		},
		{
			name:    "library page ignores other rules",
			relPath: "libraries/dagster-aws.json",
			body:    `<a href="../foo/#bar">a</a> <a href="../../y">b</a>`,
			want:    `<a href="../foo/#bar">a</a> <a href="../y">b</a>`,
		},
		{
			name:    "librariesx is not a library page",
			relPath: "librariesx/a.json",
			body:    `<a href="../foo">x</a>`,
			want:    `<a href="foo">x</a>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TransformDocLink(tt.relPath, tt.body))
		})
	}
}

func TestTransformModuleLink(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "apidocs prefix and fragment",
			body: `<a href="sections/api/apidocs/foo/#bar">x</a>`,
			want: `<a href="_apidocs/foo#bar">x</a>`,
		},
		{
			name: "only first fragment separator",
			body: `<a href="a/#b/#c">x</a>`,
			want: `<a href="a#b/#c">x</a>`,
		},
		{
			name: "parent prefix kept",
			body: `<a href="../foo/#bar">x</a>`,
			want: `<a href="../foo#bar">x</a>`,
		},
		{
			name: "text outside href untouched",
			body: `sections/api/apidocs/ <a href="x">y/#z</a>`,
			want: `sections/api/apidocs/ <a href="x">y/#z</a>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TransformModuleLink("pkg/core.json", tt.body))
		})
	}
}

func TestIsLibraryPage(t *testing.T) {
	assert.True(t, IsLibraryPage("libraries/a.json"))
	assert.True(t, IsLibraryPage("sections/libraries/a.json"))
	assert.False(t, IsLibraryPage("sections/a.json"))
	assert.False(t, IsLibraryPage("libraries.json"))
}
