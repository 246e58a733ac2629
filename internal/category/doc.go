// Package category maps source folder names to the (side, part type, level)
// triple that drives routing.
//
// Each house product ships a fixed table; the tables are plain data held in
// unexported maps and only reachable through Model.Lookup, so nothing at
// runtime can change a folder's category. Custom tables can be loaded from
// TOML for products that are not built in.
package category
