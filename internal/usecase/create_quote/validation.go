package create_quote

import (
	"fmt"

	"github.com/Testforever-git/VMS-RentalService/internal/domain"
)

// validateDates проверяет, что обе даты указаны
// Инвертированный диапазон не отклоняется: подсчет дней прижимает его к одному дню
func validateDates(req *Request) error {
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return ErrMissingDates
	}
	return nil
}

// validateLeg парсит способ выдачи/возврата и проверяет форму запроса:
// для адресной доставки обязательны координаты
func validateLeg(side string, leg LegRequest) (domain.DeliveryMethod, error) {
	method, err := domain.ParseDeliveryMethod(leg.Method)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrInvalidDeliveryMethod, side, err)
	}

	if method == domain.MethodAddress && (leg.Lat == nil || leg.Lng == nil) {
		return "", fmt.Errorf("%w: %s: address delivery requires coordinates", ErrInvalidDeliveryMethod, side)
	}

	return method, nil
}
