// Package menu models the dinner catalog: MenuItem lines, Dinner products and the closed set
// of pricing policies that distinguish English, French, Valentine and ChampagneFeast dinners.
//
// A Dinner is one concrete type parameterised by a Policy. Adding a cuisine means adding a
// Policy value, not a new type. Both MenuItem and Dinner satisfy Product, which is what an
// order line refers to.
package menu
