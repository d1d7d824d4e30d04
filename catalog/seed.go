package catalog

import "kasir-pos/models"

// DefaultProducts is the stall's standard menu, loaded into the products
// table on first start.
var DefaultProducts = []models.Product{
	{ID: 1, Name: "Dimsum Ayam", Description: "Dimsum ayam isi 4", Category: "dimsum", Price: 15000, Cost: 8000},
	{ID: 2, Name: "Saus Sambal", Description: "Saus sambal extra", Category: "tambahan", Price: 2000, Cost: 500},
	{ID: 3, Name: "Dimsum Udang", Description: "Dimsum udang isi 4", Category: "dimsum", Price: 18000, Cost: 10000},
	{ID: 4, Name: "Dimsum Mentai", Description: "Dimsum saus mentai isi 4", Category: "dimsum", Price: 20000, Cost: 11000},
	{ID: 5, Name: "Siomay Ikan", Description: "Siomay ikan tenggiri isi 4", Category: "dimsum", Price: 16000, Cost: 9000},
	{ID: 6, Name: "Es Teh Manis", Description: "Es teh manis gelas besar", Category: "minuman", Price: 5000, Cost: 1500},
	{ID: 7, Name: "Es Jeruk", Description: "Es jeruk peras", Category: "minuman", Price: 7000, Cost: 2500},
	{ID: 8, Name: "Air Mineral", Description: "Air mineral botol 600ml", Category: "minuman", Price: 4000, Cost: 2000},
}
