package repository

import (
	"cmp"
	"slices"
)

func sortByPosition[T any](items []T, position func(T) int) {
	slices.SortStableFunc(items, func(a, b T) int {
		return cmp.Compare(position(a), position(b))
	})
}
