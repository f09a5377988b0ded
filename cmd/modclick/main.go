// ModClick - кроссплатформенный ремаппер: удержание модификатора
// превращается в нажатие правой кнопки мыши.
//
// Работает в системном трее. Умеет сам включаться и выключаться
// по активному приложению.
package main

import (
	"log"
	"os"

	"modclick/internal/app"
	"modclick/internal/hotkey"
)

// Version устанавливается при сборке через -ldflags.
var Version = "dev"

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)
	log.Printf("ModClick %s запускается...", Version)

	// Запускаем в главном потоке (требование для macOS и некоторых GUI)
	hotkey.RunOnMainThread(run)
}

func run() {
	application, err := app.New()
	if err != nil {
		log.Printf("Ошибка инициализации: %v", err)
		os.Exit(1)
	}

	log.Println("Приложение запущено. Удерживайте модификатор для правого клика.")
	application.Run()
}
