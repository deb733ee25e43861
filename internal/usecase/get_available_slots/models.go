package get_available_slots

import (
	"time"

	"github.com/m04kA/HallBookingService/internal/domain"
)

// Request модель запроса на получение слотов
type Request struct {
	Date time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком слотов
type Response struct {
	Date  time.Time              // Дата, на которую запрашивались слоты
	Past  bool                   // Дата раньше сегодняшней, новые бронирования невозможны
	Slots []domain.AvailableSlot // Все слоты каталога с отметкой занятости
}
