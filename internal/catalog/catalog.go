// Package catalog holds the demo seed data for a QR menu installation: one
// restaurant account, its outlet, and the outlet's menu and tables.
// References between entities use names (not IDs), the same way a seed
// file would be written by hand.
package catalog

import (
	"fmt"
	"net/url"
	"strings"
)

// Restaurant is a restaurant account.
type Restaurant struct {
	Name               string `json:"name"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	Address            string `json:"address"`
	City               string `json:"city"`
	Country            string `json:"country"`
	Currency           string `json:"currency"`
	SubscriptionPlan   string `json:"subscription_plan"`
	SubscriptionStatus string `json:"subscription_status"`
}

// Outlet is a single physical location of a restaurant.
type Outlet struct {
	Name            string `json:"name"`
	Slug            string `json:"slug"`
	Address         string `json:"address"`
	City            string `json:"city"`
	Phone           string `json:"phone"`
	OpeningTime     string `json:"opening_time"` // HH:MM:SS
	ClosingTime     string `json:"closing_time"` // HH:MM:SS
	SeatingCapacity int    `json:"seating_capacity"`
}

// MenuPath returns the public menu path for the outlet.
func (o Outlet) MenuPath() string {
	return "/m/" + o.Slug
}

// Category is a menu section.
type Category struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Dish is a menu item. Category holds the category name.
type Dish struct {
	Category     string `json:"category"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Price        int    `json:"price"` // whole units of the restaurant currency
	IsVegetarian bool   `json:"is_vegetarian"`
	SpiceLevel   int    `json:"spice_level"` // 0 (none) to 5
}

// Table is a dine-in table. Number is free text ("5", "Outdoor-1").
type Table struct {
	Number   string `json:"table_number"`
	Capacity int    `json:"capacity"`
}

// DeepLink returns the relative URL encoded into the table's QR code. The
// table number is escaped like encodeURIComponent: a space becomes %20.
func (t Table) DeepLink(outletSlug string) string {
	number := strings.ReplaceAll(url.QueryEscape(t.Number), "+", "%20")
	return fmt.Sprintf("/m/%s?table=%s", outletSlug, number)
}

// Catalog groups the five seed lists.
type Catalog struct {
	Restaurants []Restaurant `json:"restaurants"`
	Outlets     []Outlet     `json:"outlets"`
	Categories  []Category   `json:"categories"`
	Dishes      []Dish       `json:"dishes"`
	Tables      []Table      `json:"tables"`
}

// DishesIn returns the dishes filed under the named category, in
// declaration order.
func (c *Catalog) DishesIn(category string) []Dish {
	var dishes []Dish
	for _, d := range c.Dishes {
		if d.Category == category {
			dishes = append(dishes, d)
		}
	}
	return dishes
}

// DisplayOrder returns the zero-based position of d within its category,
// or -1 if d is not in the catalog.
func (c *Catalog) DisplayOrder(d Dish) int {
	for i, other := range c.DishesIn(d.Category) {
		if other == d {
			return i
		}
	}
	return -1
}
