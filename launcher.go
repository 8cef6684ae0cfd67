package main

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"time"
)

func main() {
	fmt.Println("Запуск сервера рецептов...")

	clientName := "recipes"
	if runtime.GOOS == "windows" {
		clientName = "recipes.exe"
	}
	// сервер в фоне; без DATABASE_DSN пусть поднимается на памяти
	server := exec.Command("go", "run", "./cmd/server")
	server.Env = os.Environ()
	if os.Getenv("DATABASE_DSN") == "" && os.Getenv("DB_DRIVER") == "" {
		server.Env = append(server.Env, "DB_DRIVER=memory")
	}
	server.Stdout = os.Stdout
	server.Stderr = os.Stderr

	if err := server.Start(); err != nil {
		fmt.Printf("Ошибка запуска сервера: %v\n", err)
		return
	}

	time.Sleep(3 * time.Second)
	// собираем клиента
	if _, err := os.Stat(clientName); os.IsNotExist(err) {
		fmt.Println("Сборка клиента...")
		build := exec.Command("go", "build", "-o", clientName, "./cmd/recipes")
		build.Stdout = os.Stdout
		build.Stderr = os.Stderr
		build.Run()
		if runtime.GOOS != "windows" {
			os.Chmod(clientName, 0755)
		}
	}

	fmt.Println("Сервер запущен на http://127.0.0.1:3002")
	if runtime.GOOS == "windows" {
		fmt.Println("Данный терминал не закрывай. Открой новый и запускай: .\\recipes.exe recipes list")
	} else {
		fmt.Println("Данный терминал не закрывай. Открой новый и запускай: ./recipes recipes list")
	}

	server.Wait()
}
