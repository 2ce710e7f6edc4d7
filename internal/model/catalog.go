package model

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidBounds is returned when a metric's threshold band is malformed.
var ErrInvalidBounds = errors.New("invalid metric bounds")

// MetricDefinition is a threshold band for one metric within a category.
// Values below Lower are Good, values within [Lower, Upper] are Neutral and
// values above Upper are Bad. Upper may be +Inf.
type MetricDefinition struct {
	Category string
	Name     string
	Lower    float64
	Upper    float64
}

// NewMetricDefinition validates the band and returns the definition.
func NewMetricDefinition(category, name string, lower, upper float64) (MetricDefinition, error) {
	if name == "" {
		return MetricDefinition{}, fmt.Errorf("%w: empty metric name in category %q", ErrInvalidBounds, category)
	}
	if math.IsNaN(lower) || math.IsNaN(upper) {
		return MetricDefinition{}, fmt.Errorf("%w: %s/%s has NaN bound", ErrInvalidBounds, category, name)
	}
	if lower > upper {
		return MetricDefinition{}, fmt.Errorf("%w: %s/%s lower %g > upper %g", ErrInvalidBounds, category, name, lower, upper)
	}
	return MetricDefinition{Category: category, Name: name, Lower: lower, Upper: upper}, nil
}

// Category is an ordered group of metric definitions.
type Category struct {
	Name    string
	Metrics []MetricDefinition
}

// Catalog is the ordered set of risk categories. Iteration order is the
// order in which categories and metrics were added.
type Catalog struct {
	Categories []Category
}

// AddCategory appends an empty category unless one with that name exists.
func (c *Catalog) AddCategory(name string) {
	if c.index(name) >= 0 {
		return
	}
	c.Categories = append(c.Categories, Category{Name: name})
}

// AddMetric adds a metric to category, creating the category if needed.
// A metric with the same name in that category is replaced in place.
func (c *Catalog) AddMetric(category, name string, lower, upper float64) error {
	def, err := NewMetricDefinition(category, name, lower, upper)
	if err != nil {
		return err
	}
	c.AddCategory(category)
	cat := &c.Categories[c.index(category)]
	for i := range cat.Metrics {
		if cat.Metrics[i].Name == name {
			cat.Metrics[i] = def
			return nil
		}
	}
	cat.Metrics = append(cat.Metrics, def)
	return nil
}

// Category returns the named category.
func (c *Catalog) Category(name string) (Category, bool) {
	i := c.index(name)
	if i < 0 {
		return Category{}, false
	}
	return c.Categories[i], true
}

// MetricCount is the total number of definitions across categories.
func (c *Catalog) MetricCount() int {
	n := 0
	for _, cat := range c.Categories {
		n += len(cat.Metrics)
	}
	return n
}

func (c *Catalog) index(name string) int {
	for i, cat := range c.Categories {
		if cat.Name == name {
			return i
		}
	}
	return -1
}
