package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/reindex/internal/model"
)

func TestFindSpecifiers_BindingForm(t *testing.T) {
	content := []byte(`import { Button } from './components/Button';
import type { User } from "../types";
export { helper } from './helpers';
`)

	matches := FindSpecifiers(content)
	require.Len(t, matches, 3)

	assert.Equal(t, m.SpecifierMatch{Prefix: `from '`, Path: "./components/Button", Suffix: `'`}, matches[0])
	assert.Equal(t, m.SpecifierMatch{Prefix: `from "`, Path: "../types", Suffix: `"`}, matches[1])
	assert.Equal(t, m.SpecifierMatch{Prefix: `from '`, Path: "./helpers", Suffix: `'`}, matches[2])
}

func TestFindSpecifiers_DynamicForm(t *testing.T) {
	content := []byte(`const Widget = React.lazy(() => import('./Widget'));
type T = import("../types").User;
`)

	matches := FindSpecifiers(content)
	require.Len(t, matches, 2)

	assert.Equal(t, m.SpecifierMatch{Prefix: `import('`, Path: "./Widget", Suffix: `')`}, matches[0])
	assert.Equal(t, m.SpecifierMatch{Prefix: `import("`, Path: "../types", Suffix: `")`}, matches[1])
}

func TestFindSpecifiers_OutOfScopeIgnored(t *testing.T) {
	content := []byte(`import React from 'react';
import { api } from "@app/api";
import fs from 'node:fs';
const lazy = import('lodash');
`)

	assert.Empty(t, FindSpecifiers(content))
}

func TestFindSpecifiers_MultipleMatchesOnOneLine(t *testing.T) {
	// A single line may carry several specifiers; every one must be
	// reported, not just the first.
	content := []byte(`type A = import('./a').A; type B = import('./b').B;`)

	matches := FindSpecifiers(content)
	require.Len(t, matches, 2)
	assert.Equal(t, "./a", matches[0].Path)
	assert.Equal(t, "./b", matches[1].Path)
}

func TestFindSpecifiers_MixedFormsInOrder(t *testing.T) {
	content := []byte(`import { x } from '../x';
const y = import('./y');
import { z } from './z';
`)

	matches := FindSpecifiers(content)
	require.Len(t, matches, 3)
	assert.Equal(t, "../x", matches[0].Path)
	assert.Equal(t, "./y", matches[1].Path)
	assert.Equal(t, "./z", matches[2].Path)
}

func TestFindSpecifiers_EmptyContent(t *testing.T) {
	assert.Empty(t, FindSpecifiers(nil))
	assert.Empty(t, FindSpecifiers([]byte("const x = 1;\n")))
}
