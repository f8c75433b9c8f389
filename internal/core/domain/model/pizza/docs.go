// Package pizza provides the catalog side of the domain: the pizzas
// customers can order, with their ingredients and current list price.
//
// Catalog prices are live values. The order lifecycle copies name and price
// into line-item snapshots at order time, which is why nothing here ever
// reaches back into existing orders.
package pizza
