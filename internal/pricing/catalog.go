package pricing

// Идентификаторы типов услуг.
const (
	ServiceTypeApp     = "app"
	ServiceTypeWeb     = "web"
	ServiceTypeProgram = "program"
)

// ServiceType — тип услуги с базовой ценой.
type ServiceType struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	BasePrice   int64  `json:"base_price"`
}

// CatalogFeature — функция из каталога, бесплатная или платная.
type CatalogFeature struct {
	Name   string `json:"name"`
	IsFree bool   `json:"is_free"`
}

// FeatureCategory группирует функции каталога.
type FeatureCategory struct {
	Category string           `json:"category"`
	Features []CatalogFeature `json:"features"`
}

// Catalog — фиксированный прайс: типы услуг и каталог функций.
// Каталог передаётся в конструкторы явно, чтобы его можно было заменить
// (например, прайсом из базы) без изменения логики расчёта.
type Catalog struct {
	ServiceTypes []ServiceType     `json:"service_types"`
	Categories   []FeatureCategory `json:"categories"`

	features map[string]CatalogFeature
	services map[string]ServiceType
}

// NewCatalog строит каталог и индексы поиска по нему.
func NewCatalog(serviceTypes []ServiceType, categories []FeatureCategory) *Catalog {
	c := &Catalog{
		ServiceTypes: serviceTypes,
		Categories:   categories,
		features:     make(map[string]CatalogFeature),
		services:     make(map[string]ServiceType, len(serviceTypes)),
	}
	for _, st := range serviceTypes {
		c.services[st.ID] = st
	}
	for _, cat := range categories {
		for _, f := range cat.Features {
			c.features[f.Name] = f
		}
	}
	return c
}

// ServiceType возвращает тип услуги по идентификатору.
func (c *Catalog) ServiceType(id string) (ServiceType, bool) {
	st, ok := c.services[id]
	return st, ok
}

// Feature возвращает функцию каталога по имени.
func (c *Catalog) Feature(name string) (CatalogFeature, bool) {
	f, ok := c.features[name]
	return f, ok
}

// DefaultCatalog возвращает действующий прайс сайта.
func DefaultCatalog() *Catalog {
	serviceTypes := []ServiceType{
		{ID: ServiceTypeApp, Title: "Разработка приложения", Description: "Кроссплатформенное приложение iOS/Android", BasePrice: 5_000_000},
		{ID: ServiceTypeWeb, Title: "Создание сайта", Description: "Адаптивный сайт или веб-приложение", BasePrice: 3_000_000},
		{ID: ServiceTypeProgram, Title: "Разработка программы", Description: "Автоматизация и индивидуальные решения", BasePrice: 4_000_000},
	}

	categories := []FeatureCategory{
		{
			Category: "Аккаунты и авторизация",
			Features: []CatalogFeature{
				{Name: "Регистрация и вход по email", IsFree: true},
				{Name: "Вход через соцсети", IsFree: true},
				{Name: "Сброс и смена пароля", IsFree: false},
				{Name: "Управление профилем", IsFree: true},
				{Name: "Удаление аккаунта", IsFree: true},
				{Name: "Роли (админ/пользователь/продавец)", IsFree: false},
				{Name: "Блокировка и жалобы", IsFree: false},
				{Name: "Двухфакторная аутентификация", IsFree: false},
			},
		},
		{
			Category: "Платежи и подписки",
			Features: []CatalogFeature{
				{Name: "Обычная оплата (карта/перевод)", IsFree: false},
				{Name: "Регулярные платежи (подписка)", IsFree: false},
				{Name: "Встроенные покупки", IsFree: false},
				{Name: "Возвраты и отмены", IsFree: false},
				{Name: "История платежей и чеки", IsFree: false},
				{Name: "Купоны и промоакции", IsFree: false},
				{Name: "Бонусные баллы", IsFree: false},
				{Name: "Быстрая оплата", IsFree: false},
			},
		},
		{
			Category: "Контент",
			Features: []CatalogFeature{
				{Name: "Загрузка изображений и файлов", IsFree: false},
				{Name: "Загрузка видео (сжатие/конвертация)", IsFree: false},
				{Name: "Текстовый редактор", IsFree: false},
				{Name: "Автогенерация превью", IsFree: false},
				{Name: "Категории и теги", IsFree: false},
				{Name: "Отложенная публикация", IsFree: false},
				{Name: "Статистика контента", IsFree: false},
				{Name: "Публичный/скрытый доступ", IsFree: false},
			},
		},
		{
			Category: "Сообщество и общение",
			Features: []CatalogFeature{
				{Name: "Комментарии и ответы", IsFree: true},
				{Name: "Лайки и закладки", IsFree: true},
				{Name: "Подписки на пользователей", IsFree: false},
				{Name: "Форум/доска объявлений", IsFree: false},
				{Name: "Отзывы и рейтинг", IsFree: false},
				{Name: "Система жалоб", IsFree: false},
				{Name: "Личные сообщения", IsFree: false},
				{Name: "Групповые чаты", IsFree: false},
				{Name: "Push и email уведомления", IsFree: false},
			},
		},
		{
			Category: "Магазин и товары",
			Features: []CatalogFeature{
				{Name: "Загрузка товаров", IsFree: false},
				{Name: "Опции и складской учёт", IsFree: false},
				{Name: "Корзина", IsFree: false},
				{Name: "Отслеживание заказов", IsFree: false},
				{Name: "Статусы доставки", IsFree: false},
				{Name: "Кабинет продавца", IsFree: false},
				{Name: "Список желаний", IsFree: false},
				{Name: "Регулярная доставка", IsFree: false},
			},
		},
		{
			Category: "Поиск",
			Features: []CatalogFeature{
				{Name: "Поиск с автодополнением", IsFree: false},
				{Name: "Расширенные фильтры", IsFree: false},
				{Name: "Рекомендации", IsFree: false},
				{Name: "Популярные запросы", IsFree: false},
			},
		},
		{
			Category: "Администрирование",
			Features: []CatalogFeature{
				{Name: "Админ-панель", IsFree: false},
				{Name: "Управление пользователями и заказами", IsFree: false},
				{Name: "Мониторинг логов", IsFree: false},
				{Name: "Баннеры и попапы", IsFree: false},
				{Name: "Объявления", IsFree: false},
				{Name: "Мультиязычность", IsFree: false},
				{Name: "Адаптивный UI и тёмная тема", IsFree: false},
			},
		},
	}

	return NewCatalog(serviceTypes, categories)
}
