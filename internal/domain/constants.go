package domain

// Форматы даты и времени
const (
	DateFormat     = "2006-01-02" // YYYY-MM-DD (API)
	DateFormatUser = "02.01.2006" // DD.MM.YYYY (сообщения пользователю)
	TimeFormat     = "15:04"      // HH:MM
)

// ActiveStatuses статусы, учитываемые при проверке пересечений
// Бронирование в одном из этих статусов блокирует временной диапазон
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// TerminalStatuses статусы, из которых нет дальнейших переходов
var TerminalStatuses = []BookingStatus{
	StatusCancelled,
	StatusRejected,
	StatusCompleted,
}
