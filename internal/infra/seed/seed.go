// Package seed carries the built-in destination catalog and reward
// definitions. Catalog ingestion proper is an external concern; this static
// extract of RNT registrations for Boyacá and Cundinamarca lets the backend
// run and be tested without the upstream registry.
package seed

import (
	"errors"
	"fmt"

	"github.com/turismocol/turismocol/internal/domain"
	"github.com/turismocol/turismocol/internal/infra/sqlite"
)

// Destinations is the embedded catalog extract.
var Destinations = []domain.Destination{
	{RNT: "12001", RazonSocial: "Hotel Plaza Mayor Villa de Leyva", Categoria: "ALOJAMIENTO HOTELERO", Subcategoria: "HOTEL", Nomdep: "BOYACA", NombreMuni: "Villa de Leyva", Habitaciones: 28, Camas: 52, Empleados: 14},
	{RNT: "12002", RazonSocial: "Hospedería Duruelo", Categoria: "ALOJAMIENTO HOTELERO", Subcategoria: "HOTEL", Nomdep: "BOYACA", NombreMuni: "Villa de Leyva", Habitaciones: 85, Camas: 160, Empleados: 40},
	{RNT: "12003", RazonSocial: "Finca Ecológica El Roble", Categoria: "ALOJAMIENTO RURAL", Subcategoria: "FINCA TURISTICA", Nomdep: "BOYACA", NombreMuni: "Paipa", Habitaciones: 8, Camas: 18, Empleados: 5},
	{RNT: "12004", RazonSocial: "Termales La Esperanza", Categoria: "ALOJAMIENTO RURAL", Subcategoria: "CENTRO VACACIONAL", Nomdep: "BOYACA", NombreMuni: "Paipa", Habitaciones: 22, Camas: 48, Empleados: 19},
	{RNT: "12005", RazonSocial: "Hotel Hunza Tunja", Categoria: "ALOJAMIENTO HOTELERO", Subcategoria: "HOTEL", Nomdep: "BOYACA", NombreMuni: "Tunja", Habitaciones: 100, Camas: 180, Empleados: 60},
	{RNT: "12006", RazonSocial: "Boyacá Travel Expertos", Categoria: "AGENCIA DE VIAJES", Subcategoria: "AGENCIA DE VIAJES Y TURISMO", Nomdep: "BOYACA", NombreMuni: "Tunja", Empleados: 6},
	{RNT: "12007", RazonSocial: "Guías del Cocuy", Categoria: "GUÍA DE TURISMO", Subcategoria: "GUIA DE TURISMO", Nomdep: "BOYACA", NombreMuni: "El Cocuy", Empleados: 3},
	{RNT: "12008", RazonSocial: "Glamping Laguna de Tota", Categoria: "ALOJAMIENTO RURAL", Subcategoria: "CAMPAMENTO", Nomdep: "BOYACA", NombreMuni: "Tota", Habitaciones: 6, Camas: 12, Empleados: 4},
	{RNT: "12009", RazonSocial: "Transporte Turístico Andino", Categoria: "TRANSPORTE TURÍSTICO", Subcategoria: "TRANSPORTE TERRESTRE", Nomdep: "BOYACA", NombreMuni: "Sogamoso", Empleados: 11},
	{RNT: "12010", RazonSocial: "Posada del Molino San Luis", Categoria: "ALOJAMIENTO HOTELERO", Subcategoria: "POSADA", Nomdep: "BOYACA", NombreMuni: "Monguí", Habitaciones: 12, Camas: 24, Empleados: 7},
	{RNT: "21001", RazonSocial: "Hotel Colonial Guaduas", Categoria: "ALOJAMIENTO HOTELERO", Subcategoria: "HOTEL", Nomdep: "CUNDINAMARCA", NombreMuni: "Guaduas", Habitaciones: 35, Camas: 64, Empleados: 18},
	{RNT: "21002", RazonSocial: "Viajes Sabana Tours", Categoria: "AGENCIA DE VIAJES", Subcategoria: "AGENCIA DE VIAJES Y TURISMO", Nomdep: "CUNDINAMARCA", NombreMuni: "Zipaquirá", Empleados: 9},
	{RNT: "21003", RazonSocial: "Hostal Catedral de Sal", Categoria: "ALOJAMIENTO HOTELERO", Subcategoria: "HOSTAL", Nomdep: "CUNDINAMARCA", NombreMuni: "Zipaquirá", Habitaciones: 18, Camas: 40, Empleados: 8},
	{RNT: "21004", RazonSocial: "Finca Agroturística La Mesa", Categoria: "ALOJAMIENTO RURAL", Subcategoria: "FINCA TURISTICA", Nomdep: "CUNDINAMARCA", NombreMuni: "La Mesa", Habitaciones: 10, Camas: 22, Empleados: 6},
	{RNT: "21005", RazonSocial: "Guatavita Mágica Guías", Categoria: "GUÍA DE TURISMO", Subcategoria: "GUIA DE TURISMO", Nomdep: "CUNDINAMARCA", NombreMuni: "Guatavita", Empleados: 4},
	{RNT: "21006", RazonSocial: "Ecoparque Suesca Aventura", Categoria: "ALOJAMIENTO RURAL", Subcategoria: "CAMPAMENTO", Nomdep: "CUNDINAMARCA", NombreMuni: "Suesca", Habitaciones: 15, Camas: 45, Empleados: 12},
	{RNT: "21007", RazonSocial: "Transportes Tequendama Tour", Categoria: "TRANSPORTE TURÍSTICO", Subcategoria: "TRANSPORTE TERRESTRE", Nomdep: "CUNDINAMARCA", NombreMuni: "Soacha", Empleados: 15},
	{RNT: "21008", RazonSocial: "Hotel Boutique Chía Real", Categoria: "ALOJAMIENTO HOTELERO", Subcategoria: "HOTEL", Nomdep: "CUNDINAMARCA", NombreMuni: "Chía", Habitaciones: 24, Camas: 42, Empleados: 16},
}

// Rewards is the embedded partner reward catalog.
var Rewards = []domain.Reward{
	{ID: "rw-cafe-villa", Title: "Café y postre para dos", Description: "Merienda para dos personas en el centro histórico de Villa de Leyva", PointsRequired: 25, Partner: "Café de la Plaza", PartnerContact: "cafedelaplaza@turismocol.co", MaxRedemptions: 50, Terms: "Válido de lunes a viernes"},
	{ID: "rw-termales", Title: "Entrada a termales", Description: "Una entrada de día completo a los termales de Paipa", PointsRequired: 50, Partner: "Termales La Esperanza", PartnerContact: "reservas@termalesesperanza.co", MaxRedemptions: 30, Terms: "Reservar con 48 horas de anticipación"},
	{ID: "rw-tour-sal", Title: "Tour Catedral de Sal", Description: "Tour guiado para una persona en la Catedral de Sal de Zipaquirá", PointsRequired: 80, Partner: "Viajes Sabana Tours", PartnerContact: "+57 310 555 0142", MaxRedemptions: 20, Terms: "Sujeto a disponibilidad de cupos"},
	{ID: "rw-noche-rural", Title: "Noche en finca turística", Description: "Una noche para dos personas en alojamiento rural asociado", PointsRequired: 200, Partner: "Red de Turismo Rural", PartnerContact: "reservas@turismoruralandino.co", MaxRedemptions: 10, Terms: "Válido de domingo a jueves, no acumulable"},
	{ID: "rw-cocuy", Title: "Caminata guiada El Cocuy", Description: "Caminata de un día con guía certificado en la Sierra Nevada del Cocuy", PointsRequired: 350, Partner: "Guías del Cocuy", PartnerContact: "guiasdelcocuy@turismocol.co", MaxRedemptions: 5, Terms: "Requiere certificado médico de altura"},
}

// Load inserts the embedded catalog and rewards. Existing destinations are
// left untouched; rewards are upserted so definition changes propagate
// without resetting redemption counters.
func Load(db *sqlite.DB) error {
	for i := range Destinations {
		d := Destinations[i]
		if err := db.InsertDestination(&d); err != nil {
			if errors.Is(err, domain.ErrDuplicateRNT) {
				continue
			}
			return fmt.Errorf("seed destination %s: %w", d.RNT, err)
		}
	}
	for i := range Rewards {
		r := Rewards[i]
		if err := db.UpsertReward(&r); err != nil {
			return fmt.Errorf("seed reward %s: %w", r.ID, err)
		}
	}
	return nil
}
