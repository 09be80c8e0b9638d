package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/mala-inventario/internal/domain"
)

// Channel canal de venta por el que se realizó la venta.
type Channel string

// Canales de venta admitidos.
const (
	ChannelWhatsapp      Channel = "Whatsapp"
	ChannelInstagram     Channel = "Instagram"
	ChannelShowroom      Channel = "Showroom"
	ChannelShopify       Channel = "Shopify"
	ChannelPuntosDeVenta Channel = "Puntos de Venta"
)

// Channels lista los canales en el orden en que se ofrecen en el formulario.
var Channels = []Channel{
	ChannelWhatsapp,
	ChannelInstagram,
	ChannelShowroom,
	ChannelShopify,
	ChannelPuntosDeVenta,
}

// ParseChannel acepta el nombre del canal sin distinguir mayúsculas ni espacios
// ("puntos de venta" y "PuntosDeVenta" son el mismo canal).
func ParseChannel(s string) (Channel, error) {
	key := channelKey(s)
	for _, c := range Channels {
		if channelKey(string(c)) == key {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", domain.ErrInvalidChannel, s)
}

func channelKey(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}

// SaleRecord representa una fila del registro de ventas (ventas).
// El registro es de solo agregado: ninguna fila se edita ni se borra.
type SaleRecord struct {
	Date     time.Time // Fecha
	Code     string    // CODIGO
	Quantity int       // Cantidad (> 0)
	Channel  Channel   // Canal
}

// NewSaleRecord construye una venta validada. La fecha se trunca a segundos para
// que la hoja de cálculo la conserve sin pérdida.
func NewSaleRecord(date time.Time, code string, quantity int, channel string) (SaleRecord, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return SaleRecord{}, fmt.Errorf("%w: CODIGO vacío", domain.ErrInvalidInput)
	}
	if quantity <= 0 {
		return SaleRecord{}, fmt.Errorf("%w: la cantidad debe ser mayor que cero", domain.ErrInvalidInput)
	}
	ch, err := ParseChannel(channel)
	if err != nil {
		return SaleRecord{}, err
	}
	return SaleRecord{
		Date:     date.Truncate(time.Second),
		Code:     code,
		Quantity: quantity,
		Channel:  ch,
	}, nil
}

// CloneSales copia el registro de ventas.
func CloneSales(in []SaleRecord) []SaleRecord {
	out := make([]SaleRecord, len(in))
	copy(out, in)
	return out
}
